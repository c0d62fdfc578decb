package cli

import (
	"github.com/spf13/cobra"

	"detour.dev/detour/internal/actions"
	"detour.dev/detour/internal/cli/helpers"
)

// newWipCmd creates the wip command
func newWipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wip",
		Short: "Stash all work in progress with a timestamped message",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, actions.WipAction)
		},
	}
}
