// Package lifecycle orchestrates install, list, and uninstall over an
// action repository and the install root. Installed state is read from
// the filesystem alone; no manifest is kept.
package lifecycle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"github.com/tmc/switchapps"
	"github.com/tmc/switchapps/bundle"
	"github.com/tmc/switchapps/debug"
)

// Confirmer asks the operator a yes/no question. Implementations block
// for input; returning false aborts the operation cleanly.
type Confirmer func(prompt string) bool

// Manager performs one lifecycle operation per invocation.
type Manager struct {
	cfg     switchapps.Config
	repo    *switchapps.Repository
	builder *bundle.Builder
	remover bundle.Remover
	confirm Confirmer
}

// NewManager wires a Manager from the per-invocation configuration and
// its collaborators.
func NewManager(cfg switchapps.Config, compiler bundle.Compiler, remover bundle.Remover, confirm Confirmer) *Manager {
	return &Manager{
		cfg:     cfg,
		repo:    &switchapps.Repository{Root: cfg.RepoRoot},
		builder: bundle.NewBuilder(compiler, remover),
		remover: remover,
		confirm: confirm,
	}
}

// Install resolves the action and builds its bundle under the install
// root, replacing any previous artifact. A definition with an
// install-hook delegates the whole procedure to the hook. Returns the
// installed bundle path.
func (m *Manager) Install(ctx context.Context, idOrName string) (string, error) {
	a, err := m.repo.Resolve(idOrName)
	if err != nil {
		return "", err
	}

	if err := m.ensureInstallRoot(); err != nil {
		return "", err
	}

	target := filepath.Join(m.cfg.InstallRoot, a.BundleName())
	if a.InstallHook != "" {
		p := &CustomProcedure{Path: a.InstallHook, Target: target, RepoRoot: m.cfg.RepoRoot}
		if err := p.Run(ctx, a); err != nil {
			return "", &switchapps.Error{Op: "install " + a.ID, Err: err}
		}
		return target, nil
	}

	return m.builder.Build(ctx, a, m.cfg.InstallRoot)
}

// Uninstall removes the action's installed bundle. A definition with an
// uninstall-hook delegates the whole procedure to the hook. Uninstalling
// an action with no bundle present fails with ErrNotInstalled.
func (m *Manager) Uninstall(ctx context.Context, idOrName string) error {
	a, err := m.repo.Resolve(idOrName)
	if err != nil {
		return err
	}

	target := filepath.Join(m.cfg.InstallRoot, a.BundleName())
	if a.UninstallHook != "" {
		p := &CustomProcedure{Path: a.UninstallHook, Target: target, RepoRoot: m.cfg.RepoRoot}
		if err := p.Run(ctx, a); err != nil {
			return &switchapps.Error{Op: "uninstall " + a.ID, Err: err}
		}
		return nil
	}

	if _, err := os.Stat(target); os.IsNotExist(err) {
		return &switchapps.Error{
			Op:   "uninstall " + a.ID,
			Err:  switchapps.ErrNotInstalled,
			Help: "run 'switchapps list' to see which actions are installed",
		}
	}

	log := debug.Logger()
	log.Debug().Str("action", a.ID).Str("target", target).Msg("removing bundle")
	if err := m.remover.Remove(target); err != nil {
		return &switchapps.Error{Op: "uninstall " + a.ID, Err: err}
	}
	return nil
}

// List reports every action definition with its installed state.
func (m *Manager) List() ([]switchapps.Status, error) {
	return m.repo.List(m.cfg.InstallRoot)
}

// ensureInstallRoot creates the install root on first need, gated by the
// confirmation prompt. Declining the prompt yields ErrAborted, which the
// CLI treats as a clean exit.
func (m *Manager) ensureInstallRoot() error {
	info, err := os.Stat(m.cfg.InstallRoot)
	switch {
	case err == nil:
		if !info.IsDir() {
			return fmt.Errorf("install root %s is not a directory", m.cfg.InstallRoot)
		}
		if err := unix.Access(m.cfg.InstallRoot, unix.W_OK); err != nil {
			return &switchapps.Error{
				Op:   "check install root",
				Err:  err,
				Help: fmt.Sprintf("make %s writable or point install_root elsewhere", m.cfg.InstallRoot),
			}
		}
		return nil
	case os.IsNotExist(err):
		if m.confirm != nil && !m.confirm(fmt.Sprintf("Create install directory %s?", m.cfg.InstallRoot)) {
			return switchapps.ErrAborted
		}
		if err := os.MkdirAll(m.cfg.InstallRoot, 0o755); err != nil {
			return fmt.Errorf("create install root: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("stat install root: %w", err)
	}
}
