package git

import "context"

// Commit records the staged changes with the given message
func (a *Adapter) Commit(ctx context.Context, message string) CommandResult {
	return a.capture(ctx, "commit", "-m", message)
}
