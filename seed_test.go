package switchapps

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedRepository(t *testing.T) {
	root := filepath.Join(t.TempDir(), "actions")
	require.NoError(t, SeedRepository(root))

	// The fallback trio must be complete.
	for _, file := range []string{LauncherFile, PayloadFile, IconFile} {
		require.FileExists(t, filepath.Join(root, DefaultDirName, file))
	}

	// The stock actions resolve against the seeded repository.
	repo := &Repository{Root: root}
	for _, id := range []string{"login-window", "sleep", "log-out"} {
		a, err := repo.Resolve(id)
		require.NoError(t, err, id)
		require.Equal(t, filepath.Join(root, DefaultDirName, LauncherFile), a.Launcher, id)
	}

	statuses, err := repo.List(t.TempDir())
	require.NoError(t, err)
	ids := map[string]bool{}
	for _, s := range statuses {
		ids[s.ID] = true
	}
	require.Equal(t, map[string]bool{"login-window": true, "sleep": true, "log-out": true}, ids)
}

func TestSeedRepositoryRefusesExisting(t *testing.T) {
	root := filepath.Join(t.TempDir(), "actions")
	require.NoError(t, SeedRepository(root))
	require.Error(t, SeedRepository(root))
}
