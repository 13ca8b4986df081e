package switchapps

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by resolution, build, and uninstall. Callers match
// them with errors.Is through wrapped chains.
var (
	// ErrNotFound reports that no action definition matches the given
	// id or name.
	ErrNotFound = errors.New("no such action")

	// ErrNotInstalled reports an uninstall request for an action with no
	// bundle under the install root.
	ErrNotInstalled = errors.New("action is not installed")

	// ErrBuild reports a failed bundle build: the external compilation
	// step failed or the target path could not be created.
	ErrBuild = errors.New("bundle build failed")

	// ErrAborted reports that the operator declined a confirmation
	// prompt. It is an intentional stop, not a failure.
	ErrAborted = errors.New("aborted by user")
)

// Error represents a switchapps error with additional context and
// actionable guidance.
type Error struct {
	Op   string // operation that failed (e.g. "resolve action", "compile bundle")
	Err  error  // underlying error
	Help string // actionable guidance for the user
}

func (e *Error) Error() string {
	if e.Help != "" {
		return fmt.Sprintf("switchapps: %s: %v\n  hint: %s", e.Op, e.Err, e.Help)
	}
	return fmt.Sprintf("switchapps: %s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
