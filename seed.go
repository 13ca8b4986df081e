package switchapps

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed all:seed
var seedFS embed.FS

// SeedRepository populates an empty repository root with the starter
// definitions shipped in the binary: the Default.action fallback trio plus
// payload overrides for the stock session actions. It refuses to touch a
// root that already holds a Default.action definition.
func SeedRepository(root string) error {
	if dirExists(filepath.Join(root, DefaultDirName)) {
		return fmt.Errorf("seed repository: %s already holds %s", root, DefaultDirName)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("seed repository: create root: %w", err)
	}

	return fs.WalkDir(seedFS, "seed", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel("seed", path)
		if err != nil || rel == "." {
			return err
		}
		dst := filepath.Join(root, rel)
		if d.IsDir() {
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return fmt.Errorf("seed repository: create %s: %w", rel, err)
			}
			return nil
		}
		data, err := seedFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("seed repository: read embedded %s: %w", rel, err)
		}
		if err := os.WriteFile(dst, data, 0o644); err != nil {
			return fmt.Errorf("seed repository: write %s: %w", rel, err)
		}
		return nil
	})
}
