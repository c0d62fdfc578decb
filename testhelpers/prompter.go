package testhelpers

import (
	"fmt"

	"detour.dev/detour/internal/tui"
)

// ScriptedPrompter answers prompts from pre-recorded queues and records
// every question it was asked
type ScriptedPrompter struct {
	Selections []string
	Confirms   []bool
	Err        error

	SelectTitles   []string
	SelectOptions  [][]tui.SelectOption
	ConfirmPrompts []string
}

// NewScriptedPrompter creates a prompter that picks selections in order
func NewScriptedPrompter(selections ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Selections: selections}
}

// WithConfirms queues answers for Confirm
func (p *ScriptedPrompter) WithConfirms(answers ...bool) *ScriptedPrompter {
	p.Confirms = append(p.Confirms, answers...)
	return p
}

// Select implements tui.Prompter
func (p *ScriptedPrompter) Select(title string, options []tui.SelectOption) (string, error) {
	p.SelectTitles = append(p.SelectTitles, title)
	p.SelectOptions = append(p.SelectOptions, options)
	if p.Err != nil {
		return "", p.Err
	}
	if len(p.Selections) == 0 {
		return "", fmt.Errorf("unexpected select prompt: %s", title)
	}
	answer := p.Selections[0]
	p.Selections = p.Selections[1:]
	return answer, nil
}

// Confirm implements tui.Prompter
func (p *ScriptedPrompter) Confirm(message string, _ bool) (bool, error) {
	p.ConfirmPrompts = append(p.ConfirmPrompts, message)
	if p.Err != nil {
		return false, p.Err
	}
	if len(p.Confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm prompt: %s", message)
	}
	answer := p.Confirms[0]
	p.Confirms = p.Confirms[1:]
	return answer, nil
}
