package actions

import (
	"strings"

	"detour.dev/detour/internal/errors"
	"detour.dev/detour/internal/runtime"
	"detour.dev/detour/internal/tui"
	"detour.dev/detour/internal/tui/style"
)

// Undo menu values
const (
	UndoSoft    = "soft"
	UndoHard    = "hard"
	UndoDiscard = "discard"
	UndoCancel  = "cancel"
)

// UndoTitle is the question shown above the undo menu
const UndoTitle = "What would you like to undo?"

// UndoChoices returns the undo menu in display order
func UndoChoices() []tui.SelectOption {
	return []tui.SelectOption{
		{Label: "Undo last commit (keep changes)", Value: UndoSoft},
		{Label: "Undo last commit (discard changes)", Value: UndoHard},
		{Label: "Discard uncommitted changes", Value: UndoDiscard},
		{Label: "Cancel", Value: UndoCancel},
	}
}

// UndoAction asks what to undo and performs it. Destructive choices are
// confirmed first; a declined confirmation changes nothing.
func UndoAction(ctx *runtime.Context) error {
	g := ctx.Git
	splog := ctx.Splog

	if err := g.EnsureRepo(ctx.Context); err != nil {
		return err
	}

	choice, err := ctx.Prompter.Select(UndoTitle, UndoChoices())
	if err != nil {
		return err
	}

	switch choice {
	case UndoSoft:
		if result := g.SoftReset(ctx.Context, "HEAD~1"); !result.Succeeded {
			return errors.NewCommandFailedError("Failed to undo last commit", strings.TrimSpace(result.Output))
		}
		splog.Success("Last commit undone, changes kept")

	case UndoHard:
		confirmed, err := ctx.Prompter.Confirm(style.ColorRed("This will permanently delete the last commit. Continue?"), false)
		if err != nil {
			return err
		}
		if !confirmed {
			splog.Info("Cancelled")
			return nil
		}
		if result := g.HardReset(ctx.Context, "HEAD~1"); !result.Succeeded {
			return errors.NewCommandFailedError("Failed to remove last commit", strings.TrimSpace(result.Output))
		}
		splog.Success("Last commit removed")

	case UndoDiscard:
		confirmed, err := ctx.Prompter.Confirm(style.ColorRed("This will permanently discard all uncommitted changes. Continue?"), false)
		if err != nil {
			return err
		}
		if !confirmed {
			splog.Info("Cancelled")
			return nil
		}
		if result := g.HardReset(ctx.Context, "HEAD"); !result.Succeeded {
			return errors.NewCommandFailedError("Failed to discard changes", strings.TrimSpace(result.Output))
		}
		if result := g.CleanUntracked(ctx.Context); !result.Succeeded {
			return errors.NewCommandFailedError("Failed to remove untracked files", strings.TrimSpace(result.Output))
		}
		splog.Success("Uncommitted changes discarded")

	default:
		splog.Info("Cancelled")
	}

	return nil
}
