// Package git is the only place where the git binary is executed.
//
// It wraps git command execution behind the Executor interface and provides an
// Adapter with a Go-friendly surface for:
//   - Repository checks (inside a repo, repo root)
//   - Working tree queries (short status, uncommitted changes)
//   - Upstream tracking (ahead/behind counts, upstream presence)
//   - Branch and remote probes and the mutations the CLI workflows need
//
// Parsing of git's textual output lives here too, so a change in git's output
// format is a fix in one place.
package git
