package tui

import (
	"errors"
	"fmt"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	detourerrors "detour.dev/detour/internal/errors"
)

// SelectOption represents an option in a selection prompt
type SelectOption struct {
	Label string // What to show
	Value string // Value to return
}

// Prompter asks the user to pick an option or confirm an action
type Prompter interface {
	// Select returns the Value of the chosen option
	Select(title string, options []SelectOption) (string, error)
	// Confirm asks a yes/no question
	Confirm(message string, defaultValue bool) (bool, error)
}

// SurveyPrompter implements Prompter on the controlling terminal
type SurveyPrompter struct{}

// NewSurveyPrompter creates a terminal prompter
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{}
}

// checkInteractiveAllowed returns an error if prompts cannot be shown
func checkInteractiveAllowed() error {
	if os.Getenv("DETOUR_NO_INTERACTIVE") != "" || !IsTTY() {
		return detourerrors.ErrInteractiveDisabled
	}
	return nil
}

// Select prompts the user to select from a list of options
func (p *SurveyPrompter) Select(title string, options []SelectOption) (string, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return "", err
	}
	if len(options) == 0 {
		return "", fmt.Errorf("no options provided")
	}

	labels := make([]string, len(options))
	for i, opt := range options {
		labels[i] = opt.Label
	}

	prompt := &survey.Select{
		Message: title,
		Options: labels,
	}
	var index int
	if err := survey.AskOne(prompt, &index); err != nil {
		return "", translatePromptError(err)
	}
	if index < 0 || index >= len(options) {
		return "", fmt.Errorf("invalid selection %d", index)
	}
	return options[index].Value, nil
}

// Confirm prompts the user for yes/no confirmation
func (p *SurveyPrompter) Confirm(message string, defaultValue bool) (bool, error) {
	if err := checkInteractiveAllowed(); err != nil {
		return false, err
	}

	prompt := &survey.Confirm{
		Message: message,
		Default: defaultValue,
	}
	var confirmed bool
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, translatePromptError(err)
	}
	return confirmed, nil
}

func translatePromptError(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return detourerrors.ErrInterrupted
	}
	return fmt.Errorf("prompt failed: %w", err)
}
