package lifecycle

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/tmc/switchapps"
	"github.com/tmc/switchapps/debug"
)

// Procedure is the strategy for installing or removing a single action.
// The manager uses the built-in build/remove path unless the definition
// supplies a hook, in which case a CustomProcedure takes over entirely.
type Procedure interface {
	Run(ctx context.Context, a *switchapps.Action) error
}

// CustomProcedure executes a definition's hook as an isolated child
// process. The hook receives the action context through SWITCHAPPS_*
// environment variables; it is never loaded into this process.
type CustomProcedure struct {
	// Path is the hook executable.
	Path string

	// Target is the bundle path the hook is expected to create or
	// remove.
	Target string

	// RepoRoot is the repository root, for hooks that read sibling
	// definition files.
	RepoRoot string

	// Stdout and Stderr receive the hook's output. Nil means the parent
	// process streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the hook and waits for it to finish.
func (p *CustomProcedure) Run(ctx context.Context, a *switchapps.Action) error {
	log := debug.Logger()
	log.Debug().Str("action", a.ID).Str("hook", p.Path).Msg("running hook")

	cmd := exec.CommandContext(ctx, p.Path)
	cmd.Env = append(os.Environ(),
		"SWITCHAPPS_ACTION_ID="+a.ID,
		"SWITCHAPPS_ACTION_NAME="+a.Name,
		"SWITCHAPPS_TARGET="+p.Target,
		"SWITCHAPPS_REPO_ROOT="+p.RepoRoot,
	)
	cmd.Stdout = p.Stdout
	cmd.Stderr = p.Stderr
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("hook %s: %w", p.Path, err)
	}
	return nil
}
