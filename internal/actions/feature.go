package actions

import (
	"fmt"
	"strings"

	"detour.dev/detour/internal/errors"
	"detour.dev/detour/internal/git"
	"detour.dev/detour/internal/runtime"
)

// NewFeatureOptions contains options for the new-feature command
type NewFeatureOptions struct {
	Name string // Branch suffix; the configured feature prefix is prepended
}

// NewFeatureAction creates and switches to a feature branch
func NewFeatureAction(ctx *runtime.Context, opts NewFeatureOptions) error {
	g := ctx.Git

	if err := g.EnsureRepo(ctx.Context); err != nil {
		return err
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		return fmt.Errorf("branch name cannot be empty")
	}
	branchName := ctx.Config.FeaturePrefix + name

	if g.BranchExists(ctx.Context, branchName) {
		return errors.NewCommandFailedError(fmt.Sprintf("Branch '%s' already exists", branchName), "")
	}

	var result git.CommandResult
	created := ctx.Spinner.Spin(fmt.Sprintf("Creating branch %s...", branchName), func() bool {
		result = g.CreateAndCheckoutBranch(ctx.Context, branchName)
		return result.Succeeded
	})
	if !created {
		return errors.NewCommandFailedError("Failed to create branch", strings.TrimSpace(result.Output))
	}

	ctx.Splog.Success("Created and switched to branch '%s'", branchName)
	return nil
}
