// Package trash relocates files into the user's trash instead of deleting
// them outright, so an accidental uninstall can be undone by hand.
package trash

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Mover moves paths into a trash directory, falling back to permanent
// removal when the trash is unavailable or the rename fails (for example
// across filesystems).
type Mover struct {
	// Dir overrides the trash directory. Empty means ~/.Trash.
	Dir string
}

// Remove relocates path into the trash under a timestamped name, or
// removes it permanently when no trash directory can be used. A missing
// path is not an error.
func (m *Mover) Remove(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if dir := m.trashDir(); dir != "" {
		dst := filepath.Join(dir, fmt.Sprintf("%s-%d", filepath.Base(path), time.Now().UnixNano()))
		if err := os.Rename(path, dst); err == nil {
			return nil
		}
	}

	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

func (m *Mover) trashDir() string {
	dir := m.Dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".Trash")
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return ""
	}
	return dir
}
