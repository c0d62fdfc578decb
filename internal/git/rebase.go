package git

import "context"

// Rebase replays the current branch onto its upstream.
// On conflict git leaves the rebase in progress and Succeeded is false.
func (a *Adapter) Rebase(ctx context.Context) CommandResult {
	return a.capture(ctx, "rebase")
}
