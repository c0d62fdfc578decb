package git

import "context"

// DefaultRemote is the remote probed and pruned when none is configured
const DefaultRemote = "origin"

// RemoteExists reports whether the named remote is configured.
// Query failures are reported as "does not exist".
func (a *Adapter) RemoteExists(ctx context.Context, remote string) bool {
	if remote == "" {
		remote = DefaultRemote
	}
	return a.capture(ctx, "remote", "get-url", remote).Succeeded
}

// Fetch updates remote-tracking refs for the current branch's remote
func (a *Adapter) Fetch(ctx context.Context) CommandResult {
	return a.capture(ctx, "fetch")
}

// PruneRemote prunes stale remote-tracking branches
func (a *Adapter) PruneRemote(ctx context.Context, remote string) CommandResult {
	if remote == "" {
		remote = DefaultRemote
	}
	return a.capture(ctx, "remote", "prune", remote)
}
