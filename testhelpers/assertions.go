// Package testhelpers provides testing utilities for the detour CLI,
// including a scene system, Git repository helpers, a scripted git executor
// and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectBranches asserts that the repository has exactly the expected local branches.
func ExpectBranches(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	branches, err := repo.GetLocalBranches()
	require.NoError(t, err, "Failed to list branches")

	actual := append([]string{}, branches...)
	want := append([]string{}, expected...)
	sort.Strings(actual)
	sort.Strings(want)

	require.Equal(t, want, actual, "Branches do not match")
}

// ExpectCommits asserts that the newest commits on the current branch have the
// expected subjects, newest first.
func ExpectCommits(t *testing.T, repo *GitRepo, expected []string) {
	t.Helper()

	messages, err := repo.ListCurrentBranchCommitMessages()
	require.NoError(t, err, "Failed to list commits")

	if len(messages) < len(expected) {
		require.Fail(t, "Not enough commits", "Expected %d commits, got %d", len(expected), len(messages))
		return
	}
	require.Equal(t, expected, messages[:len(expected)], "Commits do not match")
}
