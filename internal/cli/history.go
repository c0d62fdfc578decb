package cli

import (
	"github.com/spf13/cobra"

	"detour.dev/detour/internal/actions"
	"detour.dev/detour/internal/cli/helpers"
	"detour.dev/detour/internal/runtime"
)

// newHistoryCmd creates the history command
func newHistoryCmd() *cobra.Command {
	var limit string

	cmd := &cobra.Command{
		Use:               "history [LIMIT]",
		Short:             "Show recent commits",
		Aliases:           []string{"hist"},
		Args:              cobra.MaximumNArgs(1),
		ValidArgsFunction: cobra.NoFileCompletions,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				limit = args[0]
			}
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.HistoryAction(ctx, actions.HistoryOptions{
					Limit: limit,
				})
			})
		},
	}

	cmd.Flags().StringVarP(&limit, "limit", "n", "", "Number of commits to show (default from config, 10)")

	return cmd
}
