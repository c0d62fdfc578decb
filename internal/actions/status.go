package actions

import (
	"fmt"
	"strings"

	"detour.dev/detour/internal/runtime"
	"detour.dev/detour/internal/tui/style"
)

// StatusAction prints the current branch, its upstream state and any
// uncommitted changes
func StatusAction(ctx *runtime.Context) error {
	g := ctx.Git
	splog := ctx.Splog

	if err := g.EnsureRepo(ctx.Context); err != nil {
		return err
	}

	branch := g.CurrentBranch(ctx.Context)
	splog.Newline()
	splog.Info("%s %s", style.Heading("Branch:"), style.ColorBranchName(branch))

	if g.HasUpstream(ctx.Context) {
		ahead := g.CommitsAhead(ctx.Context)
		behind := g.CommitsBehind(ctx.Context)
		splog.Info("%s %s", style.Heading("Upstream:"), FormatUpstream(ahead, behind))
	} else {
		splog.Info("%s %s", style.Heading("Upstream:"), style.ColorDim("no tracking branch"))
	}

	splog.Newline()
	if g.HasUncommittedChanges(ctx.Context) {
		splog.Info("%s", style.Heading("Changes:"))
		g.ShortStatus(ctx.Context)
	} else {
		splog.Info("%s", style.ColorGreen("✓ Working tree clean"))
	}
	splog.Newline()

	return nil
}

// FormatUpstream renders ahead/behind counts as "↑N ↓M", or "✓ up to date"
// when both are zero
func FormatUpstream(ahead, behind int) string {
	if ahead == 0 && behind == 0 {
		return style.ColorGreen("✓ up to date")
	}
	parts := []string{}
	if ahead > 0 {
		parts = append(parts, style.ColorGreen(fmt.Sprintf("↑%d", ahead)))
	}
	if behind > 0 {
		parts = append(parts, style.ColorRed(fmt.Sprintf("↓%d", behind)))
	}
	return strings.Join(parts, " ")
}
