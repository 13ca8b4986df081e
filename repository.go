package switchapps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"
)

// Filesystem vocabulary of the repository and the install root.
const (
	// DefSuffix is the suffix of action definition directories.
	DefSuffix = ".action"

	// BundleSuffix is the suffix of installed bundles.
	BundleSuffix = ".app"

	// DefaultDirName is the reserved definition directory supplying the
	// fallback launcher, payload, and icon. It is never listed or
	// installed itself.
	DefaultDirName = "Default" + DefSuffix

	// Artifact names inside a definition directory.
	LauncherFile      = "launcher.applescript"
	PayloadFile       = "payload.sh"
	IconFile          = "icon.icns"
	InstallHookFile   = "install-hook"
	UninstallHookFile = "uninstall-hook"
)

// Action is a fully resolved action definition. Launcher, Payload, and
// Icon point at the definition's own file when it supplies one and at the
// shared default otherwise. Hook paths are empty when the definition has
// no hook.
type Action struct {
	ID   string
	Name string

	Launcher string
	Payload  string
	Icon     string

	InstallHook   string
	UninstallHook string
}

// BundleName returns the basename of the action's installed bundle.
func (a *Action) BundleName() string {
	return a.Name + BundleSuffix
}

// Status pairs an action id with its installed state.
type Status struct {
	ID        string
	Installed bool
}

// Repository is a flat collection of action definition directories under a
// single root.
type Repository struct {
	Root string
}

// Resolve looks up an action by canonical id or display name. Input
// containing no uppercase character is treated as an id and converted to
// name form first. The returned action has every artifact resolved
// against the shared Default.action definition.
func (r *Repository) Resolve(idOrName string) (*Action, error) {
	name := idOrName
	if !strings.ContainsFunc(idOrName, unicode.IsUpper) {
		name = IDToName(idOrName)
	}
	id := NameToID(name)

	dir := filepath.Join(r.Root, name+DefSuffix)
	if !dirExists(dir) {
		return nil, &Error{
			Op:  fmt.Sprintf("resolve action %q", idOrName),
			Err: ErrNotFound,
			Help: fmt.Sprintf("run 'switchapps list' to see the definitions under %s", r.Root),
		}
	}

	def := filepath.Join(r.Root, DefaultDirName)
	return &Action{
		ID:            id,
		Name:          name,
		Launcher:      pickOverride(dir, def, LauncherFile),
		Payload:       pickOverride(dir, def, PayloadFile),
		Icon:          pickOverride(dir, def, IconFile),
		InstallHook:   optionalFile(dir, InstallHookFile),
		UninstallHook: optionalFile(dir, UninstallHookFile),
	}, nil
}

// List scans the repository root for definition directories and reports
// each action id with whether its bundle currently exists under
// installRoot. Order follows directory enumeration and is not guaranteed.
func (r *Repository) List(installRoot string) ([]Status, error) {
	entries, err := os.ReadDir(r.Root)
	if err != nil {
		return nil, fmt.Errorf("scan repository %s: %w", r.Root, err)
	}

	var statuses []Status
	for _, e := range entries {
		if !e.IsDir() || !strings.HasSuffix(e.Name(), DefSuffix) {
			continue
		}
		if e.Name() == DefaultDirName {
			continue
		}
		name := strings.TrimSuffix(e.Name(), DefSuffix)
		statuses = append(statuses, Status{
			ID:        NameToID(name),
			Installed: fileExists(filepath.Join(installRoot, name+BundleSuffix)),
		})
	}
	return statuses, nil
}

// pickOverride returns the definition's own artifact when present and the
// shared default's path otherwise. The default path is not stat'ed here;
// a missing default surfaces as a build failure when it is first read.
func pickOverride(dir, defaultDir, file string) string {
	if p := filepath.Join(dir, file); fileExists(p) {
		return p
	}
	return filepath.Join(defaultDir, file)
}

// optionalFile returns the artifact path if present, empty otherwise.
func optionalFile(dir, file string) string {
	if p := filepath.Join(dir, file); fileExists(p) {
		return p
	}
	return ""
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
