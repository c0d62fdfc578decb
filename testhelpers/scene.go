package testhelpers

import (
	"os"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a scene and changes the process working directory into it.
// Because it changes the working directory and environment, tests using it
// must not call t.Parallel.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get current directory: %v", err)
	}

	// Commands under test run git with the inherited environment
	t.Setenv("GIT_CONFIG_GLOBAL", os.DevNull)
	t.Setenv("DETOUR_CONFIG", os.DevNull)
	t.Setenv("DETOUR_NO_INTERACTIVE", "1")

	scene := newScene(t, setup)

	if err := os.Chdir(scene.Dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldDir)
	})

	return scene
}

// NewSceneParallel creates a scene without touching the working directory,
// so it is safe to use from parallel tests.
func NewSceneParallel(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return newScene(t, setup)
}

func newScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	tmpDir := t.TempDir()

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
