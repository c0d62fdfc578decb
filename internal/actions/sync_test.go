package actions_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"detour.dev/detour/internal/actions"
	detourerrors "detour.dev/detour/internal/errors"
	"detour.dev/detour/testhelpers"
)

func withUpstream(exec *testhelpers.FakeExecutor) *testhelpers.FakeExecutor {
	return exec.Succeed("rev-parse --abbrev-ref --symbolic-full-name @{u}", "origin/main\n")
}

func TestSyncAction(t *testing.T) {
	t.Run("warns without upstream", func(t *testing.T) {
		exec := onBranch("main").
			Fail("rev-parse --abbrev-ref --symbolic-full-name @{u}", "fatal: no upstream configured\n")
		tc := testhelpers.NewTestContext(t, exec, nil)

		require.NoError(t, actions.SyncAction(tc.Context))
		require.Empty(t, exec.MutationCalls())
		require.Contains(t, tc.Output.String(), "⚠ No upstream branch configured")
	})

	t.Run("fetches but does not rebase when not behind", func(t *testing.T) {
		exec := withUpstream(onBranch("main")).
			Succeed("rev-list --count HEAD..@{u}", "0\n")
		tc := testhelpers.NewTestContext(t, exec, nil)

		require.NoError(t, actions.SyncAction(tc.Context))
		require.True(t, exec.Called("fetch"))
		require.False(t, exec.Called("rebase"))
		require.Contains(t, tc.Output.String(), "✓ Already up to date")
	})

	t.Run("rebases when behind", func(t *testing.T) {
		exec := withUpstream(onBranch("main")).
			Succeed("rev-list --count HEAD..@{u}", "3\n").
			Succeed("rebase", "Successfully rebased and updated refs/heads/main.\n")
		tc := testhelpers.NewTestContext(t, exec, nil)

		require.NoError(t, actions.SyncAction(tc.Context))
		require.Equal(t, []string{"fetch", "rebase"}, exec.MutationCalls())
		require.Contains(t, tc.Output.String(), "Rebasing main...")
		require.Contains(t, tc.Output.String(), "✓ Successfully synced main")
	})

	t.Run("fails with guidance on conflicts", func(t *testing.T) {
		exec := withUpstream(onBranch("main")).
			Succeed("rev-list --count HEAD..@{u}", "1\n").
			Fail("rebase", "CONFLICT (content): Merge conflict in app.go\n")
		tc := testhelpers.NewTestContext(t, exec, nil)

		err := actions.SyncAction(tc.Context)
		require.Error(t, err)
		require.Equal(t, 1, detourerrors.ExitCode(err))

		var failed *detourerrors.CommandFailedError
		require.True(t, errors.As(err, &failed))
		require.Equal(t, "Rebase failed - you may have conflicts to resolve", failed.Summary)
		require.Contains(t, failed.Output, "CONFLICT (content)")
		require.Contains(t, failed.Hint, "git rebase --continue")
		require.Contains(t, failed.Hint, "git rebase --abort")
	})

	t.Run("continues after a failed fetch", func(t *testing.T) {
		exec := withUpstream(onBranch("main")).
			Fail("fetch", "fatal: unable to access remote\n").
			Succeed("rev-list --count HEAD..@{u}", "0\n")
		tc := testhelpers.NewTestContext(t, exec, nil)

		require.NoError(t, actions.SyncAction(tc.Context))
		require.Contains(t, tc.Output.String(), "Fetch failed")
		require.Contains(t, tc.Output.String(), "unable to access remote")
		require.False(t, exec.Called("rebase"))
	})
}

func TestSyncActionInRepository(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)
	_, err := scene.Repo.CreateBareRemote("origin")
	require.NoError(t, err)
	require.NoError(t, scene.Repo.PushBranch("origin", "main"))

	// Advance the remote, then rewind the local branch so it is behind
	require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
	require.NoError(t, scene.Repo.RunGitCommand("push", "origin", "main"))
	require.NoError(t, scene.Repo.RunGitCommand("reset", "--hard", "HEAD~1"))

	tc := sceneContext(t, scene, nil)
	require.NoError(t, actions.SyncAction(tc.Context))
	require.Contains(t, tc.Output.String(), "✓ Successfully synced main")
	testhelpers.ExpectCommits(t, scene.Repo, []string{"2", "1"})
}
