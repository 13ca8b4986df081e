package lifecycle_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tmc/switchapps"
	"github.com/tmc/switchapps/internal/trash"
	"github.com/tmc/switchapps/lifecycle"
)

// fakeCompiler mimics osacompile's output tree.
type fakeCompiler struct{}

func (fakeCompiler) Compile(ctx context.Context, scriptPath, targetPath string) error {
	script, err := os.ReadFile(scriptPath)
	if err != nil {
		return err
	}
	for _, dir := range []string{
		filepath.Join(targetPath, "Contents", "MacOS"),
		filepath.Join(targetPath, "Contents", "Resources", "Scripts"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := os.WriteFile(filepath.Join(targetPath, "Contents", "MacOS", "applet"), []byte("applet"), 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(targetPath, "Contents", "Resources", "Scripts", "main.scpt"), script, 0o644)
}

func accept(string) bool  { return true }
func decline(string) bool { return false }

// newFixture builds a seeded repository, an install root parent, and a
// manager wired with the fake compiler and a scratch trash directory.
func newFixture(t *testing.T, confirm lifecycle.Confirmer) (*lifecycle.Manager, switchapps.Config) {
	t.Helper()
	repoRoot := filepath.Join(t.TempDir(), "actions")
	require.NoError(t, switchapps.SeedRepository(repoRoot))

	cfg := switchapps.Config{
		RepoRoot:    repoRoot,
		InstallRoot: filepath.Join(t.TempDir(), "Switch Apps"),
	}
	m := lifecycle.NewManager(cfg, fakeCompiler{}, &trash.Mover{Dir: t.TempDir()}, confirm)
	return m, cfg
}

func TestInstallThenListShowsInstalled(t *testing.T) {
	m, cfg := newFixture(t, accept)
	ctx := context.Background()

	path, err := m.Install(ctx, "login-window")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfg.InstallRoot, "Login Window.app"), path)
	require.DirExists(t, path)

	statuses, err := m.List()
	require.NoError(t, err)
	got := map[string]bool{}
	for _, s := range statuses {
		got[s.ID] = s.Installed
	}
	require.True(t, got["login-window"])
	require.False(t, got["sleep"])
}

func TestInstallTwiceLeavesSingleBundle(t *testing.T) {
	m, cfg := newFixture(t, accept)
	ctx := context.Background()

	_, err := m.Install(ctx, "sleep")
	require.NoError(t, err)
	_, err = m.Install(ctx, "sleep")
	require.NoError(t, err)

	entries, err := os.ReadDir(cfg.InstallRoot)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, "Sleep.app", entries[0].Name())
}

func TestInstallUnknownActionFails(t *testing.T) {
	m, _ := newFixture(t, accept)

	_, err := m.Install(context.Background(), "unknown-action")
	require.ErrorIs(t, err, switchapps.ErrNotFound)
}

func TestInstallDeclinedSetupAborts(t *testing.T) {
	m, cfg := newFixture(t, decline)

	_, err := m.Install(context.Background(), "sleep")
	require.ErrorIs(t, err, switchapps.ErrAborted)
	require.NoDirExists(t, cfg.InstallRoot)
}

func TestUninstallRemovesBundle(t *testing.T) {
	m, cfg := newFixture(t, accept)
	ctx := context.Background()

	_, err := m.Install(ctx, "log-out")
	require.NoError(t, err)
	require.NoError(t, m.Uninstall(ctx, "log-out"))
	require.NoDirExists(t, filepath.Join(cfg.InstallRoot, "Log Out.app"))

	statuses, err := m.List()
	require.NoError(t, err)
	for _, s := range statuses {
		require.False(t, s.Installed, s.ID)
	}
}

func TestUninstallNeverInstalled(t *testing.T) {
	m, cfg := newFixture(t, accept)
	require.NoError(t, os.MkdirAll(cfg.InstallRoot, 0o755))

	err := m.Uninstall(context.Background(), "sleep")
	require.ErrorIs(t, err, switchapps.ErrNotInstalled)

	// Nothing was created or removed.
	entries, err2 := os.ReadDir(cfg.InstallRoot)
	require.NoError(t, err2)
	require.Empty(t, entries)
}

func TestOverrideOnlyIconUsesDefaultScripts(t *testing.T) {
	m, cfg := newFixture(t, accept)
	ctx := context.Background()

	// Give Login Window an icon override and nothing else.
	dir := filepath.Join(cfg.RepoRoot, "Login Window"+switchapps.DefSuffix)
	require.NoError(t, os.WriteFile(filepath.Join(dir, switchapps.IconFile), []byte("override-icon"), 0o644))
	// Drop its payload override so both scripts come from Default.action.
	require.NoError(t, os.Remove(filepath.Join(dir, switchapps.PayloadFile)))

	path, err := m.Install(ctx, "login-window")
	require.NoError(t, err)

	defPayload, err := os.ReadFile(filepath.Join(cfg.RepoRoot, switchapps.DefaultDirName, switchapps.PayloadFile))
	require.NoError(t, err)
	installed, err := os.ReadFile(filepath.Join(path, "Contents", "Resources", "payload.sh"))
	require.NoError(t, err)
	require.Equal(t, defPayload, installed)

	icon, err := os.ReadFile(filepath.Join(path, "Contents", "Resources", "applet.icns"))
	require.NoError(t, err)
	require.Equal(t, "override-icon", string(icon))
}

func TestInstallHookOverridesProcedure(t *testing.T) {
	m, cfg := newFixture(t, accept)
	ctx := context.Background()

	dir := filepath.Join(cfg.RepoRoot, "Switch User"+switchapps.DefSuffix)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	marker := filepath.Join(t.TempDir(), "marker")
	hook := "#!/bin/sh\nprintf '%s' \"$SWITCHAPPS_ACTION_ID:$SWITCHAPPS_TARGET\" > " + marker + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, switchapps.InstallHookFile), []byte(hook), 0o755))

	target, err := m.Install(ctx, "switch-user")
	require.NoError(t, err)

	// The hook ran in place of the builder: the marker exists, the
	// bundle does not.
	data, err := os.ReadFile(marker)
	require.NoError(t, err)
	require.Equal(t, "switch-user:"+target, string(data))
	require.NoDirExists(t, target)
}

func TestUninstallHookOverridesProcedure(t *testing.T) {
	m, cfg := newFixture(t, accept)
	ctx := context.Background()

	dir := filepath.Join(cfg.RepoRoot, "Switch User"+switchapps.DefSuffix)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	marker := filepath.Join(t.TempDir(), "marker")
	hook := "#!/bin/sh\nprintf removed > " + marker + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, switchapps.UninstallHookFile), []byte(hook), 0o755))

	require.NoError(t, m.Uninstall(ctx, "switch-user"))
	require.FileExists(t, marker)
}

func TestFailingHookSurfacesError(t *testing.T) {
	m, cfg := newFixture(t, accept)

	dir := filepath.Join(cfg.RepoRoot, "Switch User"+switchapps.DefSuffix)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, switchapps.InstallHookFile), []byte("#!/bin/sh\nexit 3\n"), 0o755))

	_, err := m.Install(context.Background(), "switch-user")
	require.Error(t, err)
	var serr *switchapps.Error
	require.True(t, errors.As(err, &serr))
}
