package runtime

import (
	"context"
	"fmt"
	"os"
	"time"

	"detour.dev/detour/internal/config"
	"detour.dev/detour/internal/git"
	"detour.dev/detour/internal/tui"
)

// Context provides access to git, output and prompts for commands
type Context struct {
	context.Context
	Git      *git.Adapter
	Splog    *tui.Splog
	Prompter tui.Prompter
	Spinner  tui.Spinner
	Config   *config.Config
	Now      func() time.Time
}

// NewContext wires a Context from its parts, filling in defaults for a nil
// config or clock
func NewContext(ctx context.Context, adapter *git.Adapter, splog *tui.Splog, prompter tui.Prompter, spinner tui.Spinner, cfg *config.Config) *Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.Default()
	}
	return &Context{
		Context:  ctx,
		Git:      adapter,
		Splog:    splog,
		Prompter: prompter,
		Spinner:  spinner,
		Config:   cfg,
		Now:      time.Now,
	}
}

// NewTerminalContext creates the context used by the real CLI: git on the
// process terminal, survey prompts and a terminal-aware spinner
func NewTerminalContext(ctx context.Context, workingDir string) (*Context, error) {
	cfg, err := config.Load(workingDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	splog, err := tui.NewSplogWithConfig(os.Stdout, tui.GetLogFilePath(cfg.LogFile))
	if err != nil {
		return nil, fmt.Errorf("failed to set up logging: %w", err)
	}

	runner := git.NewCommandRunner(cfg.GitBinary, workingDir)
	adapter := git.NewAdapter(runner, splog.Logger())

	return NewContext(ctx, adapter, splog, tui.NewSurveyPrompter(), tui.NewSpinner(splog), cfg), nil
}

type contextKey struct{}

// WithContext stores a runtime Context in a standard context
func WithContext(ctx context.Context, rc *Context) context.Context {
	return context.WithValue(ctx, contextKey{}, rc)
}

// GetContext returns the runtime Context stored by WithContext
func GetContext(ctx context.Context) (*Context, error) {
	if ctx == nil {
		return nil, fmt.Errorf("no command context")
	}
	rc, ok := ctx.Value(contextKey{}).(*Context)
	if !ok || rc == nil {
		return nil, fmt.Errorf("runtime context not initialized")
	}
	return rc, nil
}
