package git

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/storage/filesystem"

	detourerrors "detour.dev/detour/internal/errors"
)

// IsInsideRepo reports whether the working directory is inside a git repository.
// It never fails: any error from git means "no".
func (a *Adapter) IsInsideRepo(ctx context.Context) bool {
	return a.capture(ctx, "rev-parse", "--git-dir").Succeeded
}

// EnsureRepo returns a NotARepositoryError when not inside a git repository
func (a *Adapter) EnsureRepo(ctx context.Context) error {
	if a.IsInsideRepo(ctx) {
		return nil
	}
	wd, _ := os.Getwd()
	return detourerrors.NewNotARepositoryError(wd)
}

// GetCommonGitDir returns the git directory shared by every worktree of the
// repository containing dir. For a linked worktree or a submodule, .git is a
// file and the directory lives elsewhere.
func GetCommonGitDir(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}

	storage, ok := repo.Storer.(*filesystem.Storage)
	if !ok {
		return "", fmt.Errorf("unsupported repository storage %T", repo.Storer)
	}
	gitDir := storage.Filesystem().Root()

	// Linked worktrees point at the main repository through a commondir file
	data, err := os.ReadFile(filepath.Join(gitDir, "commondir"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return gitDir, nil
		}
		return "", fmt.Errorf("failed to read commondir: %w", err)
	}

	commonDir := strings.TrimSpace(string(data))
	if !filepath.IsAbs(commonDir) {
		commonDir = filepath.Join(gitDir, commonDir)
	}
	return filepath.Clean(commonDir), nil
}
