package cli

import (
	"github.com/spf13/cobra"

	"detour.dev/detour/internal/actions"
	"detour.dev/detour/internal/cli/helpers"
	"detour.dev/detour/internal/runtime"
)

// newSaveCmd creates the save command
func newSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save [MESSAGE]",
		Short: "Stage everything and commit it",
		Long: `Stage all changes, untracked files included, and commit them.

Without MESSAGE a summary such as "Add 1 file(s), Update 2 file(s)" is used.`,
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := actions.SaveOptions{}
			if len(args) > 0 {
				opts.Message = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.SaveAction(ctx, opts)
			})
		},
	}
}
