package git_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"detour.dev/detour/internal/git"
	"detour.dev/detour/testhelpers"
)

func TestCommandRunner(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("captures combined output", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner("", scene.Dir)

		result := runner.Execute(ctx, true, "rev-parse", "--abbrev-ref", "HEAD")
		require.True(t, result.Succeeded)
		require.Equal(t, "main\n", result.Output)
	})

	t.Run("nonzero exit is a result, not an error", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		runner := git.NewCommandRunner(git.DefaultBinary, scene.Dir)

		result := runner.Execute(ctx, true, "rev-parse", "--verify", "does-not-exist")
		require.False(t, result.Succeeded)
		require.Contains(t, result.Output, "fatal")
	})

	t.Run("streams without populating output", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		stdout := &bytes.Buffer{}
		runner := git.NewCommandRunner(git.DefaultBinary, scene.Dir).WithStreams(nil, stdout, &bytes.Buffer{})

		result := runner.Execute(ctx, false, "log", "-n", "1", "--format=%s")
		require.True(t, result.Succeeded)
		require.Empty(t, result.Output)
		require.Equal(t, "1\n", stdout.String())
	})

	t.Run("missing binary fails with the start error", func(t *testing.T) {
		t.Parallel()
		runner := git.NewCommandRunner(filepath.Join(t.TempDir(), "no-such-git"), t.TempDir())

		result := runner.Execute(ctx, true, "status")
		require.False(t, result.Succeeded)
		require.NotEmpty(t, result.Output)

		streamed := runner.WithStreams(nil, &bytes.Buffer{}, &bytes.Buffer{}).Execute(ctx, false, "status")
		require.False(t, streamed.Succeeded)
		require.NotEmpty(t, streamed.Output)
	})
}

func TestAdapterInRepository(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("repository detection", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)
		inside := git.NewAdapter(git.NewCommandRunner("", scene.Dir), nil)
		outside := git.NewAdapter(git.NewCommandRunner("", t.TempDir()), nil)

		require.True(t, inside.IsInsideRepo(ctx))
		require.NoError(t, inside.EnsureRepo(ctx))
		require.False(t, outside.IsInsideRepo(ctx))
	})

	t.Run("current branch before the first commit", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, nil)
		adapter := git.NewAdapter(git.NewCommandRunner("", scene.Dir), nil)

		require.Equal(t, "main", adapter.CurrentBranch(ctx))

		require.NoError(t, scene.Repo.CreateChangeAndCommit("1", "1"))
		require.NoError(t, scene.Repo.CheckoutDetached("HEAD"))
		require.Equal(t, "", adapter.CurrentBranch(ctx))
	})

	t.Run("status lines keep leading spaces", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("1", "1"); err != nil {
				return err
			}
			if err := s.Repo.WriteFile("1_test.txt", "changed"); err != nil {
				return err
			}
			return s.Repo.WriteFile("new.txt", "new")
		})
		adapter := git.NewAdapter(git.NewCommandRunner("", scene.Dir), nil)

		require.Equal(t, []string{" M 1_test.txt", "?? new.txt"}, adapter.StatusLines(ctx))
		require.True(t, adapter.HasUncommittedChanges(ctx))
	})

	t.Run("upstream counts", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		adapter := git.NewAdapter(git.NewCommandRunner("", scene.Dir), nil)

		require.False(t, adapter.HasUpstream(ctx))
		require.Equal(t, 0, adapter.CommitsAhead(ctx))
		require.Equal(t, 0, adapter.CommitsBehind(ctx))
		require.False(t, adapter.RemoteExists(ctx, "origin"))

		_, err := scene.Repo.CreateBareRemote("origin")
		require.NoError(t, err)
		require.NoError(t, scene.Repo.PushBranch("origin", "main"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("2", "2"))
		require.NoError(t, scene.Repo.CreateChangeAndCommit("3", "3"))

		require.True(t, adapter.HasUpstream(ctx))
		require.True(t, adapter.RemoteExists(ctx, "origin"))
		require.Equal(t, 2, adapter.CommitsAhead(ctx))
		require.Equal(t, 0, adapter.CommitsBehind(ctx))
	})

	t.Run("merged branches", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
			if err := s.Repo.CreateChangeAndCommit("1", "1"); err != nil {
				return err
			}
			for _, name := range []string{"b-merged", "a-merged", "master"} {
				if err := s.Repo.CreateBranch(name); err != nil {
					return err
				}
			}
			if err := s.Repo.CreateAndCheckoutBranch("unmerged"); err != nil {
				return err
			}
			if err := s.Repo.CreateChangeAndCommit("2", "2"); err != nil {
				return err
			}
			return s.Repo.CheckoutBranch("main")
		})
		adapter := git.NewAdapter(git.NewCommandRunner("", scene.Dir), nil)

		require.Equal(t, []string{"a-merged", "b-merged"}, adapter.MergedBranches(ctx, []string{"main", "master"}))
	})

	t.Run("git dir from a subdirectory", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
			return s.Repo.WriteFile(filepath.Join("nested", "dir", "file.txt"), "x")
		})

		gitDir, err := git.GetCommonGitDir(filepath.Join(scene.Dir, "nested", "dir"))
		require.NoError(t, err)
		require.Equal(t, realPath(t, filepath.Join(scene.Dir, ".git")), realPath(t, gitDir))

		_, err = git.GetCommonGitDir(t.TempDir())
		require.Error(t, err)
	})

	t.Run("linked worktree shares the main git dir", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		worktree := filepath.Join(t.TempDir(), "wt")
		require.NoError(t, scene.Repo.RunGitCommand("worktree", "add", worktree, "-b", "side"))

		gitDir, err := git.GetCommonGitDir(worktree)
		require.NoError(t, err)
		require.Equal(t, realPath(t, filepath.Join(scene.Dir, ".git")), realPath(t, gitDir))
	})
}

func realPath(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}
