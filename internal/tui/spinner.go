package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner wraps one blocking call with a progress indicator.
// The indicator is drawn before work starts and resolved as soon as it returns.
type Spinner interface {
	Spin(label string, work func() bool) bool
}

// NewSpinner picks an animated spinner on a terminal and plain lines otherwise
func NewSpinner(splog *Splog) Spinner {
	if IsTTY() {
		return &TeaSpinner{splog: splog, out: splog.Writer()}
	}
	return &PlainSpinner{splog: splog}
}

// workDoneMsg tells the spinner program that the wrapped call returned
type workDoneMsg struct{}

// spinnerModel is the bubbletea model for a single spinner line
type spinnerModel struct {
	spinner spinner.Model
	label   string
	done    bool
}

func newSpinnerModel(label string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return spinnerModel{spinner: s, label: label}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case workDoneMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

// TeaSpinner renders an animated spinner with bubbletea.
// The program neither reads input nor traps signals, so Ctrl+C still
// terminates the process.
type TeaSpinner struct {
	splog *Splog
	out   io.Writer
}

// Spin runs work on the calling goroutine while the spinner animates
func (s *TeaSpinner) Spin(label string, work func() bool) bool {
	p := tea.NewProgram(newSpinnerModel(label),
		tea.WithInput(nil),
		tea.WithOutput(s.out),
		tea.WithoutSignalHandler(),
	)

	s.splog.SetQuiet(true)
	finished := make(chan struct{})
	go func() {
		_, _ = p.Run()
		close(finished)
	}()

	ok := work()
	p.Send(workDoneMsg{})
	<-finished
	s.splog.SetQuiet(false)

	reportSpin(s.splog, label, ok)
	return ok
}

// PlainSpinner prints a line before and after work, for pipes and CI logs
type PlainSpinner struct {
	splog *Splog
}

// NewPlainSpinner creates a spinner that never animates
func NewPlainSpinner(splog *Splog) *PlainSpinner {
	return &PlainSpinner{splog: splog}
}

// Spin runs work between two plain status lines
func (s *PlainSpinner) Spin(label string, work func() bool) bool {
	s.splog.Info("⋯ %s", label)
	ok := work()
	reportSpin(s.splog, label, ok)
	return ok
}

func reportSpin(splog *Splog, label string, ok bool) {
	if ok {
		splog.Success("%s", label)
		return
	}
	splog.Error("%s", label)
}
