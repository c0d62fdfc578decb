package cli

import (
	"github.com/spf13/cobra"

	"detour.dev/detour/internal/actions"
	"detour.dev/detour/internal/cli/helpers"
)

// newStatusCmd creates the status command
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "status",
		Short:   "Show the current branch, upstream state and changes",
		Aliases: []string{"st"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.StatusAction)
		},
	}
}
