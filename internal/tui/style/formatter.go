// Package style holds the lipgloss color helpers shared by the CLI output.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// DisableColor forces plain output for every helper in this package
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorRed colors text red
func ColorRed(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("1")).
		Render(text)
}

// ColorGreen colors text green
func ColorGreen(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("2")).
		Render(text)
}

// ColorYellow colors text yellow
func ColorYellow(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("3")).
		Render(text)
}

// ColorDim makes text dim/gray
func ColorDim(text string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("8")).
		Render(text)
}

// Bold renders text in bold
func Bold(text string) string {
	return lipgloss.NewStyle().Bold(true).Render(text)
}

// Heading renders a bold cyan label such as "Branch:"
func Heading(text string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("6")).
		Render(text)
}

// ColorBranchName colors a branch name
func ColorBranchName(branchName string) string {
	if branchName == "" {
		return ColorDim("(detached HEAD)")
	}
	return ColorYellow(branchName)
}
