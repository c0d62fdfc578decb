package cli

import (
	"github.com/spf13/cobra"

	"detour.dev/detour/internal/actions"
	"detour.dev/detour/internal/cli/helpers"
	"detour.dev/detour/internal/runtime"
)

// newNewFeatureCmd creates the new-feature command
func newNewFeatureCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new-feature NAME",
		Short: "Create and switch to a feature branch",
		Long: `Create a branch named <feature_prefix><NAME> (feature/NAME by default)
from the current HEAD and switch to it. Fails if the branch already exists.`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.NewFeatureAction(ctx, actions.NewFeatureOptions{
					Name: args[0],
				})
			})
		},
	}
}
