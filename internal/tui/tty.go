package tui

import (
	"os"

	"github.com/mattn/go-isatty"

	"detour.dev/detour/internal/tui/style"
)

// IsTTY returns true if we can use a TTY for interactive TUI
func IsTTY() bool {
	if !((isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()))) {
		return false
	}
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

// ConfigureColor turns colors off when requested by flag or by NO_COLOR
func ConfigureColor(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" {
		style.DisableColor()
	}
}
