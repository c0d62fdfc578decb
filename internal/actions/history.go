package actions

import (
	"strconv"
	"strings"

	"detour.dev/detour/internal/config"
	"detour.dev/detour/internal/runtime"
)

// HistoryOptions contains options for the history command
type HistoryOptions struct {
	Limit string // Raw limit from the command line; may be empty or invalid
}

// HistoryAction prints the most recent commits
func HistoryAction(ctx *runtime.Context, opts HistoryOptions) error {
	g := ctx.Git

	if err := g.EnsureRepo(ctx.Context); err != nil {
		return err
	}

	limit := ParseLimit(opts.Limit, ctx.Config.HistoryLimit)
	result := g.Log(ctx.Context, limit)
	if !result.Succeeded {
		ctx.Splog.Debug("git log exited with an error")
	}
	ctx.Splog.Newline()

	return nil
}

// ParseLimit parses a positive commit count, falling back to def (or the
// built-in default when def is not positive) for anything else
func ParseLimit(raw string, def int) int {
	if def <= 0 {
		def = config.DefaultHistoryLimit
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
