package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"detour.dev/detour/internal/config"
	"detour.dev/detour/testhelpers"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	require.Equal(t, "feature/", cfg.FeaturePrefix)
	require.Equal(t, "origin", cfg.Remote)
	require.Equal(t, []string{"main", "master"}, cfg.ProtectedBranches)
	require.Equal(t, 10, cfg.HistoryLimit)
	require.Equal(t, "git", cfg.GitBinary)
	require.Empty(t, cfg.LogFile)
}

func TestLoadFileConfigFrom(t *testing.T) {
	t.Parallel()

	t.Run("missing file is not an error", func(t *testing.T) {
		t.Parallel()
		cfg, err := config.LoadFileConfigFrom(filepath.Join(t.TempDir(), "nope.toml"))
		require.NoError(t, err)
		require.Nil(t, cfg)
	})

	t.Run("parses every key", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.toml")
		writeConfig(t, path, `
feature_prefix = "feat/"
remote = "upstream"
protected_branches = ["main", "develop"]
history_limit = 20
git_binary = "/usr/local/bin/git"
log_file = "~/.cache/detour/detour.log"
`)

		cfg, err := config.LoadFileConfigFrom(path)
		require.NoError(t, err)
		require.Equal(t, &config.Config{
			FeaturePrefix:     "feat/",
			Remote:            "upstream",
			ProtectedBranches: []string{"main", "develop"},
			HistoryLimit:      20,
			GitBinary:         "/usr/local/bin/git",
			LogFile:           "~/.cache/detour/detour.log",
		}, cfg)
	})

	t.Run("path through a regular file is missing", func(t *testing.T) {
		t.Parallel()
		dotGit := filepath.Join(t.TempDir(), ".git")
		writeConfig(t, dotGit, "gitdir: /elsewhere")

		cfg, err := config.LoadFileConfigFrom(filepath.Join(dotGit, config.RepoConfigFile))
		require.NoError(t, err)
		require.Nil(t, cfg)
	})

	t.Run("malformed file is an error", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "config.toml")
		writeConfig(t, path, "history_limit = [oops")

		_, err := config.LoadFileConfigFrom(path)
		require.Error(t, err)
		require.Contains(t, err.Error(), "failed to parse config")
	})
}

func TestLoad(t *testing.T) {
	t.Run("defaults outside a repository", func(t *testing.T) {
		t.Setenv("DETOUR_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

		cfg, err := config.Load(t.TempDir())
		require.NoError(t, err)
		require.Equal(t, config.Default(), cfg)
	})

	t.Run("repo file overrides user file", func(t *testing.T) {
		userPath := filepath.Join(t.TempDir(), "config.toml")
		writeConfig(t, userPath, `
feature_prefix = "user/"
remote = "upstream"
history_limit = 15
`)
		t.Setenv("DETOUR_CONFIG", userPath)

		scene := testhelpers.NewSceneParallel(t, nil)
		writeConfig(t, filepath.Join(scene.Dir, ".git", config.RepoConfigFile), `
feature_prefix = "repo/"
protected_branches = ["trunk"]
history_limit = 0
`)

		cfg, err := config.Load(scene.Dir)
		require.NoError(t, err)
		require.Equal(t, "repo/", cfg.FeaturePrefix)
		require.Equal(t, "upstream", cfg.Remote)
		require.Equal(t, []string{"trunk"}, cfg.ProtectedBranches)
		require.Equal(t, 15, cfg.HistoryLimit, "non-positive history_limit is ignored")
		require.Equal(t, "git", cfg.GitBinary)
	})

	t.Run("repo file is found from a subdirectory", func(t *testing.T) {
		t.Setenv("DETOUR_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

		scene := testhelpers.NewSceneParallel(t, func(s *testhelpers.Scene) error {
			return s.Repo.WriteFile(filepath.Join("sub", "keep.txt"), "x")
		})
		writeConfig(t, filepath.Join(scene.Dir, ".git", config.RepoConfigFile), `remote = "fork"`)

		cfg, err := config.Load(filepath.Join(scene.Dir, "sub"))
		require.NoError(t, err)
		require.Equal(t, "fork", cfg.Remote)
	})

	t.Run("linked worktree reads the main repo file", func(t *testing.T) {
		t.Setenv("DETOUR_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		writeConfig(t, filepath.Join(scene.Dir, ".git", config.RepoConfigFile), `feature_prefix = "wt/"`)
		worktree := filepath.Join(t.TempDir(), "wt")
		require.NoError(t, scene.Repo.RunGitCommand("worktree", "add", worktree, "-b", "side"))

		cfg, err := config.Load(worktree)
		require.NoError(t, err)
		require.Equal(t, "wt/", cfg.FeaturePrefix)
	})

	t.Run("malformed user file fails", func(t *testing.T) {
		userPath := filepath.Join(t.TempDir(), "config.toml")
		writeConfig(t, userPath, "remote = ")
		t.Setenv("DETOUR_CONFIG", userPath)

		_, err := config.Load(t.TempDir())
		require.Error(t, err)
	})
}

func TestUserConfigPath(t *testing.T) {
	t.Run("explicit path wins", func(t *testing.T) {
		t.Setenv("DETOUR_CONFIG", "/etc/detour.toml")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		require.Equal(t, "/etc/detour.toml", config.UserConfigPath())
	})

	t.Run("xdg config home", func(t *testing.T) {
		t.Setenv("DETOUR_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "/xdg")
		require.Equal(t, filepath.Join("/xdg", "detour", "config.toml"), config.UserConfigPath())
	})

	t.Run("home directory fallback", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("DETOUR_CONFIG", "")
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("HOME", home)
		require.Equal(t, filepath.Join(home, ".config", "detour", "config.toml"), config.UserConfigPath())
	})
}
