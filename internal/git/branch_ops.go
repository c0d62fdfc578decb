package git

import "context"

// CreateAndCheckoutBranch creates and checks out a new branch
func (a *Adapter) CreateAndCheckoutBranch(ctx context.Context, branchName string) CommandResult {
	return a.capture(ctx, "checkout", "-b", branchName)
}

// DeleteBranch deletes a fully merged branch, letting git print its own report
func (a *Adapter) DeleteBranch(ctx context.Context, branchName string) CommandResult {
	return a.stream(ctx, "branch", "-d", branchName)
}

// StashPush stashes all changes, untracked files included, under message
func (a *Adapter) StashPush(ctx context.Context, message string) CommandResult {
	args := []string{"stash", "push", "-u"}
	if message != "" {
		args = append(args, "-m", message)
	}
	return a.capture(ctx, args...)
}
