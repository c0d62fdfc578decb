package git

import (
	"context"
	"log/slog"
	"strings"
)

// Adapter exposes the git queries and mutations used by the CLI workflows.
// It holds no repository state: every call asks git again.
type Adapter struct {
	exec   Executor
	logger *slog.Logger
}

// NewAdapter creates an Adapter on top of an Executor.
// A nil logger discards debug output.
func NewAdapter(exec Executor, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Adapter{exec: exec, logger: logger}
}

// Execute runs an arbitrary git command through the underlying Executor
func (a *Adapter) Execute(ctx context.Context, capture bool, args ...string) CommandResult {
	result := a.exec.Execute(ctx, capture, args...)
	a.logger.Debug("git "+strings.Join(args, " "),
		"capture", capture,
		"succeeded", result.Succeeded,
	)
	return result
}

// capture runs a git command and collects its output
func (a *Adapter) capture(ctx context.Context, args ...string) CommandResult {
	return a.Execute(ctx, true, args...)
}

// stream runs a git command with output going to the terminal
func (a *Adapter) stream(ctx context.Context, args ...string) CommandResult {
	return a.Execute(ctx, false, args...)
}
