package git

import (
	"context"
	"slices"
	"strings"
)

// CurrentBranch returns the abbreviated name of the checked-out branch.
// It returns "" in detached HEAD state or when git cannot answer.
func (a *Adapter) CurrentBranch(ctx context.Context) string {
	result := a.capture(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if !result.Succeeded {
		// An unborn branch has no commit for rev-parse but HEAD still names it
		return a.unbornBranch(ctx)
	}
	name := strings.TrimSpace(result.Output)
	if name == "HEAD" {
		return ""
	}
	return name
}

func (a *Adapter) unbornBranch(ctx context.Context) string {
	result := a.capture(ctx, "symbolic-ref", "--short", "-q", "HEAD")
	if !result.Succeeded {
		return ""
	}
	return strings.TrimSpace(result.Output)
}

// BranchExists reports whether name resolves to a revision.
// Query failures are reported as "does not exist".
func (a *Adapter) BranchExists(ctx context.Context, name string) bool {
	return a.capture(ctx, "rev-parse", "--verify", "--quiet", name).Succeeded
}

// MergedBranches lists branches merged into HEAD, excluding the current
// branch and the protected names
func (a *Adapter) MergedBranches(ctx context.Context, protected []string) []string {
	result := a.capture(ctx, "branch", "--merged")
	if !result.Succeeded {
		return []string{}
	}
	return FilterMergedBranches(result.Output, protected)
}

// FilterMergedBranches parses `git branch --merged` output.
// Lines marked with '*' (current) or '+' (checked out in another worktree) are
// dropped, as are exact matches of protected names. Order is preserved.
func FilterMergedBranches(output string, protected []string) []string {
	branches := []string{}
	for _, line := range strings.Split(output, "\n") {
		name := strings.TrimSpace(line)
		if name == "" || strings.HasPrefix(name, "*") || strings.HasPrefix(name, "+") {
			continue
		}
		if slices.Contains(protected, name) {
			continue
		}
		branches = append(branches, name)
	}
	return branches
}
