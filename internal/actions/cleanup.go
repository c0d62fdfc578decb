package actions

import (
	"detour.dev/detour/internal/runtime"
	"detour.dev/detour/internal/tui/style"
)

// CleanupOptions contains options for the cleanup command
type CleanupOptions struct {
	Force bool // Skip the deletion confirmation
}

// CleanupAction deletes local branches already merged into HEAD, then prunes
// stale remote-tracking branches. Pruning runs whatever happened to the local
// branches, including a failed confirmation prompt.
func CleanupAction(ctx *runtime.Context, opts CleanupOptions) error {
	g := ctx.Git

	if err := g.EnsureRepo(ctx.Context); err != nil {
		return err
	}

	branches := g.MergedBranches(ctx.Context, ctx.Config.ProtectedBranches)
	promptErr := deleteMergedBranches(ctx, branches, opts)

	remote := ctx.Config.Remote
	if g.RemoteExists(ctx.Context, remote) {
		ctx.Spinner.Spin("Pruning remote branches...", func() bool {
			return g.PruneRemote(ctx.Context, remote).Succeeded
		})
	}

	return promptErr
}

// deleteMergedBranches lists branches and deletes them once confirmed.
// The only error it returns comes from the confirmation prompt.
func deleteMergedBranches(ctx *runtime.Context, branches []string, opts CleanupOptions) error {
	g := ctx.Git
	splog := ctx.Splog

	if len(branches) == 0 {
		splog.Success("No merged branches to clean up")
		return nil
	}

	splog.Info("%s", style.Bold("Merged branches:"))
	for _, branch := range branches {
		splog.Info("  - %s", branch)
	}

	confirmed := opts.Force
	if !confirmed {
		splog.Newline()
		var err error
		confirmed, err = ctx.Prompter.Confirm("Delete these branches?", false)
		if err != nil {
			return err
		}
	}

	if !confirmed {
		splog.Info("Cancelled")
		return nil
	}

	deleted := 0
	for _, branch := range branches {
		// best effort: git reports its own reason for a refused deletion
		if g.DeleteBranch(ctx.Context, branch).Succeeded {
			deleted++
		}
	}
	splog.Success("Deleted %d branch(es)", deleted)
	return nil
}
