package git

import (
	"context"
	"io"
	"os"
	"os/exec"
)

// DefaultBinary is the git executable used when none is configured
const DefaultBinary = "git"

// CommandResult is the outcome of a single git invocation
type CommandResult struct {
	// Output holds combined stdout and stderr. It is empty for streamed invocations.
	Output string
	// Succeeded reports whether git exited with status 0.
	Succeeded bool
}

// Executor runs git with the given arguments.
// A nonzero exit is reported through CommandResult, never as a panic or error,
// because many callers branch on it (rebase conflicts, missing upstream).
type Executor interface {
	Execute(ctx context.Context, capture bool, args ...string) CommandResult
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	binary     string
	workingDir string
	stdin      io.Reader
	stdout     io.Writer
	stderr     io.Writer
}

// NewCommandRunner creates a new CommandRunner that streams to the process terminal
func NewCommandRunner(binary, workingDir string) *CommandRunner {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CommandRunner{
		binary:     binary,
		workingDir: workingDir,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}
}

// WithStreams replaces the writers used for streamed (non-captured) invocations
func (r *CommandRunner) WithStreams(stdin io.Reader, stdout, stderr io.Writer) *CommandRunner {
	r.stdin = stdin
	r.stdout = stdout
	r.stderr = stderr
	return r
}

// Execute runs git. When capture is true, stdout and stderr are merged into
// Output; otherwise they go straight to the terminal.
// No timeout is applied: a hanging git process hangs the command.
func (r *CommandRunner) Execute(ctx context.Context, capture bool, args ...string) CommandResult {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}

	if !capture {
		cmd.Stdin = r.stdin
		cmd.Stdout = r.stdout
		cmd.Stderr = r.stderr
		err := cmd.Run()
		result := CommandResult{Succeeded: err == nil}
		if err != nil && !isExitError(err) {
			// git never started, so nothing reached the terminal
			result.Output = err.Error()
		}
		return result
	}

	output, err := cmd.CombinedOutput()
	result := CommandResult{
		Output:    string(output),
		Succeeded: err == nil,
	}
	if err != nil && !isExitError(err) && result.Output == "" {
		result.Output = err.Error()
	}
	return result
}

func isExitError(err error) bool {
	_, ok := err.(*exec.ExitError)
	return ok
}
