package git

import "context"

// StageAll stages all changes including untracked files and deletions
func (a *Adapter) StageAll(ctx context.Context) CommandResult {
	return a.capture(ctx, "add", "-A")
}
