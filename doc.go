// Package switchapps generates and manages macOS app bundles that act as
// double-clickable shortcuts for session actions: switching users, opening
// the login window, sleeping, logging out.
//
// Each action is described by a definition directory under the repository
// root. A definition may override the launcher script, the shell payload,
// or the icon; whatever it does not supply comes from the shared
// Default.action definition. Installing an action resolves those
// overrides, compiles the launcher into an app bundle with osacompile, and
// injects the payload and icon into the produced bundle.
//
// Installed state is the filesystem: an action is installed exactly when
// its bundle exists under the install root. No manifest or registry is
// kept, so the install root can be inspected and repaired with ordinary
// shell tools.
package switchapps
