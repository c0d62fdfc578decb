package git

import (
	"context"
	"strings"
)

// StatusLines returns the porcelain short-status lines, one per changed path.
// Lines keep their two-letter XY code intact, including a leading space.
func (a *Adapter) StatusLines(ctx context.Context) []string {
	result := a.capture(ctx, "status", "--porcelain")
	if !result.Succeeded {
		return []string{}
	}
	return ParseStatusLines(result.Output)
}

// HasUncommittedChanges reports whether short status yields any non-empty line
func (a *Adapter) HasUncommittedChanges(ctx context.Context) bool {
	return len(a.StatusLines(ctx)) > 0
}

// ShortStatus prints `git status --short` directly to the terminal
func (a *Adapter) ShortStatus(ctx context.Context) CommandResult {
	return a.stream(ctx, "status", "--short")
}

// ParseStatusLines splits porcelain output into non-empty lines without
// trimming the status columns
func ParseStatusLines(output string) []string {
	lines := []string{}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
