package actions

import (
	"strings"

	"detour.dev/detour/internal/errors"
	"detour.dev/detour/internal/runtime"
	"detour.dev/detour/internal/tui/style"
)

// SaveOptions contains options for the save command
type SaveOptions struct {
	Message string // Empty means generate one from the staged changes
}

// SaveAction stages everything and commits it
func SaveAction(ctx *runtime.Context, opts SaveOptions) error {
	g := ctx.Git
	splog := ctx.Splog

	if err := g.EnsureRepo(ctx.Context); err != nil {
		return err
	}

	if !g.HasUncommittedChanges(ctx.Context) {
		splog.Info("%s", style.ColorYellow("Nothing to save - working tree is clean"))
		return nil
	}

	if result := g.StageAll(ctx.Context); !result.Succeeded {
		return errors.NewCommandFailedError("Failed to stage changes", strings.TrimSpace(result.Output))
	}

	// Generated after staging so every change reads as index state ("M ", "A ", "D ")
	message := opts.Message
	if message == "" {
		message = GenerateCommitMessage(g.StatusLines(ctx.Context))
	}

	result := g.Commit(ctx.Context, message)
	if !result.Succeeded {
		return errors.NewCommandFailedError("Failed to commit", strings.TrimSpace(result.Output))
	}

	splog.Success("Saved changes: %s", message)
	return nil
}
