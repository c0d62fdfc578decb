package actions

import (
	"fmt"
	"strings"

	"detour.dev/detour/internal/errors"
	"detour.dev/detour/internal/git"
	"detour.dev/detour/internal/runtime"
)

// SyncAction fetches and rebases the current branch onto its upstream
func SyncAction(ctx *runtime.Context) error {
	g := ctx.Git
	splog := ctx.Splog

	if err := g.EnsureRepo(ctx.Context); err != nil {
		return err
	}

	branch := g.CurrentBranch(ctx.Context)

	if !g.HasUpstream(ctx.Context) {
		splog.Warn("No upstream branch configured")
		return nil
	}

	var fetch git.CommandResult
	fetched := ctx.Spinner.Spin("Fetching updates...", func() bool {
		fetch = g.Fetch(ctx.Context)
		return fetch.Succeeded
	})
	if !fetched {
		// Keep going: the remote-tracking refs from the last fetch are still usable
		splog.Warn("Fetch failed, using the last fetched state of the upstream")
		if output := strings.TrimSpace(fetch.Output); output != "" {
			splog.Info("%s", output)
		}
	}

	if g.CommitsBehind(ctx.Context) == 0 {
		splog.Success("Already up to date")
		return nil
	}

	var rebase git.CommandResult
	rebased := ctx.Spinner.Spin(fmt.Sprintf("Rebasing %s...", branch), func() bool {
		rebase = g.Rebase(ctx.Context)
		return rebase.Succeeded
	})
	if !rebased {
		return errors.NewCommandFailedError("Rebase failed - you may have conflicts to resolve", strings.TrimSpace(rebase.Output)).
			WithHint("Fix the conflicts and run 'git rebase --continue', or 'git rebase --abort' to give up.")
	}

	splog.Success("Successfully synced %s", branch)
	return nil
}
