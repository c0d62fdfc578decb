package cli

import (
	"github.com/spf13/cobra"

	"detour.dev/detour/internal/actions"
	"detour.dev/detour/internal/cli/helpers"
	"detour.dev/detour/internal/runtime"
)

// newCleanupCmd creates the cleanup command
func newCleanupCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Delete merged branches and prune the remote",
		Long: `Delete local branches already merged into the current branch, keeping the
current branch and the protected branches (main and master by default), then
prune stale remote-tracking branches.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return helpers.Run(cmd, func(ctx *runtime.Context) error {
				return actions.CleanupAction(ctx, actions.CleanupOptions{
					Force: force,
				})
			})
		},
	}

	cmd.Flags().BoolVarP(&force, "yes", "y", false, "Skip confirmation prompt")

	return cmd
}
