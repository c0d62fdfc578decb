package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	detourerrors "detour.dev/detour/internal/errors"
	"detour.dev/detour/internal/runtime"
	"detour.dev/detour/internal/tui"
	"detour.dev/detour/internal/tui/style"
)

// ContextFactory builds the runtime context for one invocation
type ContextFactory func(ctx context.Context) (*runtime.Context, error)

// TerminalContextFactory creates the context for the current directory on
// the process terminal
func TerminalContextFactory(ctx context.Context) (*runtime.Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return runtime.NewTerminalContext(ctx, wd)
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string, factory ContextFactory) *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:   "detour",
		Short: "Shortcuts for everyday git work",
		Long: `detour wraps the git commands you run every day behind short, friendly
sub-commands: a readable status, one-step feature branches, quick saves,
sync by rebase, guided undo, merged-branch cleanup, WIP stashes and a compact
history.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			tui.ConfigureColor(noColor)

			rc, err := factory(cmd.Context())
			if err != nil {
				return err
			}
			cmd.SetContext(runtime.WithContext(cmd.Context(), rc))
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		newStatusCmd(),
		newNewFeatureCmd(),
		newSaveCmd(),
		newSyncCmd(),
		newUndoCmd(),
		newCleanupCmd(),
		newWipCmd(),
		newHistoryCmd(),
	)

	return rootCmd
}

// Execute runs the CLI with args and returns the process exit code.
// Errors are printed once here; stderr is used only when no context exists yet
// (flag and argument errors).
func Execute(args []string, version, commit, date string, factory ContextFactory, stderr io.Writer) int {
	var rc *runtime.Context
	recording := func(ctx context.Context) (*runtime.Context, error) {
		created, err := factory(ctx)
		rc = created
		return created, err
	}

	rootCmd := NewRootCmd(version, commit, date, recording)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()

	if rc != nil && rc.Splog != nil {
		defer rc.Splog.Close()
	}
	if err != nil {
		reportError(rc, stderr, err)
	}
	return detourerrors.ExitCode(err)
}

func reportError(rc *runtime.Context, stderr io.Writer, err error) {
	if rc == nil || rc.Splog == nil {
		_, _ = fmt.Fprintln(stderr, style.ColorRed("✗ "+err.Error()))
		return
	}

	rc.Splog.Error("%s", err.Error())

	var failed *detourerrors.CommandFailedError
	if errors.As(err, &failed) && failed.Hint != "" {
		rc.Splog.Tip("%s", failed.Hint)
	}
}
