package git

import (
	"context"
	"strconv"
	"strings"
)

// HasUpstream reports whether the current branch has a remote-tracking reference
func (a *Adapter) HasUpstream(ctx context.Context) bool {
	return a.capture(ctx, "rev-parse", "--abbrev-ref", "--symbolic-full-name", "@{u}").Succeeded
}

// CommitsAhead counts commits on HEAD that are not on its upstream.
// It returns 0 when there is no upstream or the query fails.
func (a *Adapter) CommitsAhead(ctx context.Context) int {
	return a.countRevisions(ctx, "@{u}..HEAD")
}

// CommitsBehind counts commits on the upstream that are not on HEAD.
// It returns 0 when there is no upstream or the query fails.
func (a *Adapter) CommitsBehind(ctx context.Context) int {
	return a.countRevisions(ctx, "HEAD..@{u}")
}

func (a *Adapter) countRevisions(ctx context.Context, rangeSpec string) int {
	result := a.capture(ctx, "rev-list", "--count", rangeSpec)
	if !result.Succeeded {
		return 0
	}
	return ParseCount(result.Output)
}

// ParseCount parses a single integer line, returning 0 for anything else
func ParseCount(output string) int {
	n, err := strconv.Atoi(strings.TrimSpace(output))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
