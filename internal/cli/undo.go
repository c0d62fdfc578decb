package cli

import (
	"github.com/spf13/cobra"

	"detour.dev/detour/internal/actions"
	"detour.dev/detour/internal/cli/helpers"
)

// newUndoCmd creates the undo command
func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Undo the last commit or discard local changes",
		Long: `Choose what to undo from a menu:

  - undo the last commit and keep its changes staged
  - undo the last commit and discard its changes
  - discard all uncommitted changes, untracked files included

Destructive choices ask for confirmation first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.UndoAction)
		},
	}
}
