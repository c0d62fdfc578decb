package testhelpers

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"detour.dev/detour/internal/config"
	"detour.dev/detour/internal/git"
	"detour.dev/detour/internal/runtime"
	"detour.dev/detour/internal/tui"
)

// FixedNow is the clock used by test contexts
var FixedNow = time.Date(2024, time.March, 5, 14, 7, 33, 0, time.Local)

// TestContext is a runtime context whose output is captured in a buffer
type TestContext struct {
	*runtime.Context
	Output *bytes.Buffer
}

// NewTestContext wires a runtime context around a git executor and prompter.
// Console output goes to the returned buffer with colors disabled, the spinner
// prints plain lines and the clock is pinned to FixedNow.
func NewTestContext(t *testing.T, exec git.Executor, prompter tui.Prompter) *TestContext {
	t.Helper()

	lipgloss.SetColorProfile(termenv.Ascii)

	out := &bytes.Buffer{}
	splog, err := tui.NewSplogWithConfig(out, "")
	if err != nil {
		t.Fatalf("Failed to create splog: %v", err)
	}
	if prompter == nil {
		prompter = NewScriptedPrompter()
	}

	ctx := runtime.NewContext(
		context.Background(),
		git.NewAdapter(exec, splog.Logger()),
		splog,
		prompter,
		tui.NewPlainSpinner(splog),
		config.Default(),
	)
	ctx.Now = func() time.Time { return FixedNow }

	return &TestContext{Context: ctx, Output: out}
}
