// Package bundle materializes resolved action definitions into installed
// macOS app bundles.
package bundle

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tmc/switchapps"
	"github.com/tmc/switchapps/debug"
)

// Artifact slots inside a compiled bundle. osacompile produces the applet
// skeleton; the payload and icon are injected into its Resources.
const (
	entryPoint  = "Contents/MacOS/applet"
	payloadSlot = "Contents/Resources/payload.sh"
	iconSlot    = "Contents/Resources/applet.icns"
)

// Remover removes an installed bundle, preferably reversibly.
type Remover interface {
	Remove(path string) error
}

// Builder produces installed bundles from resolved actions.
type Builder struct {
	compiler Compiler
	remover  Remover
}

// NewBuilder creates a Builder with the provided collaborators.
func NewBuilder(compiler Compiler, remover Remover) *Builder {
	return &Builder{
		compiler: compiler,
		remover:  remover,
	}
}

// PayloadPath returns the payload slot inside an installed bundle.
func PayloadPath(bundlePath string) string {
	return filepath.Join(bundlePath, filepath.FromSlash(payloadSlot))
}

// IconPath returns the icon slot inside an installed bundle.
func IconPath(bundlePath string) string {
	return filepath.Join(bundlePath, filepath.FromSlash(iconSlot))
}

// EntryPointPath returns the launchable executable inside an installed
// bundle.
func EntryPointPath(bundlePath string) string {
	return filepath.Join(bundlePath, filepath.FromSlash(entryPoint))
}

// Build produces the bundle for the action under installRoot, replacing
// any previous artifact, and returns the installed path. The launcher
// source is staged in a temporary file that is removed on every exit
// path. The produced bundle is self-contained: it keeps no reference to
// the definition directory.
func (b *Builder) Build(ctx context.Context, a *switchapps.Action, installRoot string) (string, error) {
	target := filepath.Join(installRoot, a.BundleName())
	log := debug.Logger().With().Str("action", a.ID).Logger()

	if fileExists(target) {
		log.Debug().Str("target", target).Msg("removing previous bundle")
		if err := b.remover.Remove(target); err != nil {
			return "", buildError("remove previous bundle", err)
		}
	}

	launcher, err := os.ReadFile(a.Launcher)
	if err != nil {
		return "", buildError("read launcher source", err)
	}

	staged, err := os.CreateTemp("", "switchapps-launcher-*.applescript")
	if err != nil {
		return "", buildError("stage launcher source", err)
	}
	stagedPath := staged.Name()
	defer os.Remove(stagedPath)

	if _, err := staged.Write(launcher); err != nil {
		staged.Close()
		return "", buildError("stage launcher source", err)
	}
	if err := staged.Close(); err != nil {
		return "", buildError("stage launcher source", err)
	}

	log.Debug().Str("launcher", a.Launcher).Str("target", target).Msg("compiling bundle")
	if err := b.compiler.Compile(ctx, stagedPath, target); err != nil {
		return "", buildError("compile bundle", err)
	}

	if err := copyFile(a.Payload, PayloadPath(target), 0o755); err != nil {
		return "", buildError("inject payload", err)
	}
	if err := copyFile(a.Icon, IconPath(target), 0o644); err != nil {
		return "", buildError("inject icon", err)
	}

	if sum, err := checksum(PayloadPath(target)); err == nil {
		log.Debug().Str("payload", a.Payload).Str("payload_sha256", sum).Msg("bundle built")
	}
	return target, nil
}

func buildError(op string, err error) error {
	return &switchapps.Error{
		Op:   op,
		Err:  fmt.Errorf("%w: %v", switchapps.ErrBuild, err),
		Help: "re-run with --debug for the full build trace",
	}
}
