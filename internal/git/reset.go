package git

import "context"

// SoftReset moves HEAD to revision and keeps the changes staged
func (a *Adapter) SoftReset(ctx context.Context, revision string) CommandResult {
	return a.stream(ctx, "reset", "--soft", revision)
}

// HardReset moves HEAD to revision and discards all tracked changes
func (a *Adapter) HardReset(ctx context.Context, revision string) CommandResult {
	return a.stream(ctx, "reset", "--hard", revision)
}

// CleanUntracked removes untracked files and directories
func (a *Adapter) CleanUntracked(ctx context.Context) CommandResult {
	return a.stream(ctx, "clean", "-fd")
}
