package bundle

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Compiler turns a launcher script into a double-clickable bundle at the
// target path. The production implementation shells out to osacompile;
// tests substitute an implementation that mimics its output tree.
type Compiler interface {
	Compile(ctx context.Context, scriptPath, targetPath string) error
}

// Osacompile compiles AppleScript sources with the system osacompile
// tool.
type Osacompile struct{}

// Compile runs `osacompile -o targetPath scriptPath`.
func (Osacompile) Compile(ctx context.Context, scriptPath, targetPath string) error {
	cmd := exec.CommandContext(ctx, "osacompile", "-o", targetPath, scriptPath)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("osacompile -o %s: %w: %s", targetPath, err, bytes.TrimSpace(out))
	}
	return nil
}
