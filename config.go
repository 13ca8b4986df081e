package switchapps

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config carries the per-invocation settings. It is constructed once in
// main and passed down explicitly; nothing in the library reads mutable
// package state.
type Config struct {
	// RepoRoot is the directory holding the action definition
	// directories, including Default.action.
	RepoRoot string `toml:"repo_root"`

	// InstallRoot is the directory the built bundles are placed in.
	InstallRoot string `toml:"install_root"`

	// Debug enables verbose tracing.
	Debug bool `toml:"debug"`
}

// DefaultConfig returns the configuration used when no config file
// overrides anything.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("determine home directory: %w", err)
	}
	return Config{
		RepoRoot:    filepath.Join(home, "Library", "Application Support", "switchapps", "actions"),
		InstallRoot: filepath.Join(home, "Applications", "Switch Apps"),
	}, nil
}

// LoadConfig reads a TOML config file over the defaults. An empty path
// yields the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first structural problem with the configuration.
func (c Config) Validate() error {
	if c.RepoRoot == "" {
		return fmt.Errorf("repo_root must not be empty")
	}
	if c.InstallRoot == "" {
		return fmt.Errorf("install_root must not be empty")
	}
	return nil
}
