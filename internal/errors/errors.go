// Package errors provides sentinel errors and custom error types for the detour application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrCommandFailed indicates that a workflow hit an explicit failure path
	ErrCommandFailed = errors.New("command failed")

	// ErrInteractiveDisabled is returned when a prompt is needed but no terminal is available
	ErrInteractiveDisabled = errors.New("interactive prompts are disabled (no terminal or DETOUR_NO_INTERACTIVE is set)")

	// ErrInterrupted indicates the user pressed Ctrl+C during a prompt
	ErrInterrupted = errors.New("interrupted")
)

// NotARepositoryError represents a precondition failure: the command was run outside a repository
type NotARepositoryError struct {
	Dir string
}

func (e *NotARepositoryError) Error() string {
	return "Not a git repository. Run 'git init' first."
}

// Is returns true if the target error is ErrNotARepository
func (e *NotARepositoryError) Is(target error) bool {
	return target == ErrNotARepository
}

// NewNotARepositoryError creates a new NotARepositoryError
func NewNotARepositoryError(dir string) *NotARepositoryError {
	return &NotARepositoryError{Dir: dir}
}

// CommandFailedError is returned by a workflow when a mutating git call fails.
// Output holds the raw git output so the user can diagnose it.
type CommandFailedError struct {
	Summary string
	Output  string
	Hint    string // Optional next step printed after the error
}

func (e *CommandFailedError) Error() string {
	if e.Output != "" {
		return fmt.Sprintf("%s: %s", e.Summary, e.Output)
	}
	return e.Summary
}

// Is returns true if the target error is ErrCommandFailed
func (e *CommandFailedError) Is(target error) bool {
	return target == ErrCommandFailed
}

// NewCommandFailedError creates a new CommandFailedError
func NewCommandFailedError(summary, output string) *CommandFailedError {
	return &CommandFailedError{
		Summary: summary,
		Output:  output,
	}
}

// WithHint attaches a follow-up suggestion to the error
func (e *CommandFailedError) WithHint(hint string) *CommandFailedError {
	e.Hint = hint
	return e
}

// ExitCode maps an error returned by a command to a process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrInterrupted):
		return 130
	default:
		return 1
	}
}
