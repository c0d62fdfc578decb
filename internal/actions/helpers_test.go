package actions_test

import (
	"io"
	"testing"

	"detour.dev/detour/internal/git"
	"detour.dev/detour/testhelpers"
)

// outsideRepo returns an executor that answers like git run outside a repository
func outsideRepo() *testhelpers.FakeExecutor {
	return testhelpers.NewFakeExecutor().
		Fail("rev-parse --git-dir", "fatal: not a git repository (or any of the parent directories): .git")
}

// onBranch returns an executor inside a repository with branch checked out
func onBranch(branch string) *testhelpers.FakeExecutor {
	return testhelpers.NewFakeExecutor().
		Succeed("rev-parse --git-dir", ".git\n").
		Succeed("rev-parse --abbrev-ref HEAD", branch+"\n")
}

// sceneContext wires a test context to a real git repository
func sceneContext(t *testing.T, scene *testhelpers.Scene, prompter *testhelpers.ScriptedPrompter) *testhelpers.TestContext {
	t.Helper()
	runner := git.NewCommandRunner(git.DefaultBinary, scene.Dir).WithStreams(nil, io.Discard, io.Discard)
	if prompter == nil {
		return testhelpers.NewTestContext(t, runner, nil)
	}
	return testhelpers.NewTestContext(t, runner, prompter)
}
