package actions

import (
	"fmt"
	"strings"
	"time"

	"detour.dev/detour/internal/errors"
	"detour.dev/detour/internal/runtime"
	"detour.dev/detour/internal/tui/style"
)

// WipTimeFormat is the minute-resolution local timestamp used in stash messages
const WipTimeFormat = "2006-01-02 15:04"

// WipMessage builds the stash message for branch at t
func WipMessage(branch string, t time.Time) string {
	if branch == "" {
		branch = "HEAD"
	}
	return fmt.Sprintf("WIP on %s - %s", branch, t.Format(WipTimeFormat))
}

// WipAction stashes all changes, untracked files included, under a
// generated message
func WipAction(ctx *runtime.Context) error {
	g := ctx.Git
	splog := ctx.Splog

	if err := g.EnsureRepo(ctx.Context); err != nil {
		return err
	}

	if !g.HasUncommittedChanges(ctx.Context) {
		splog.Info("%s", style.ColorYellow("Nothing to save - working tree is clean"))
		return nil
	}

	message := WipMessage(g.CurrentBranch(ctx.Context), ctx.Now())

	result := g.StashPush(ctx.Context, message)
	if !result.Succeeded {
		return errors.NewCommandFailedError("Failed to save work", strings.TrimSpace(result.Output))
	}

	splog.Success("Work saved: %s", message)
	splog.Tip("  Restore with: git stash pop")
	return nil
}
