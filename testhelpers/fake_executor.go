package testhelpers

import (
	"context"
	"slices"
	"strings"
	"sync"

	"detour.dev/detour/internal/git"
)

// ExecCall records one invocation seen by a FakeExecutor
type ExecCall struct {
	Args    []string
	Capture bool
}

// Line returns the arguments joined by spaces, e.g. "rev-parse --git-dir"
func (c ExecCall) Line() string {
	return strings.Join(c.Args, " ")
}

// FakeExecutor is a scripted git.Executor.
// Responses are keyed by the joined argument line. When several responses are
// queued for the same line they are returned in order and the last one repeats.
// Lines with no script get Unscripted (success with empty output by default).
type FakeExecutor struct {
	mu         sync.Mutex
	responses  map[string][]git.CommandResult
	Unscripted git.CommandResult
	Calls      []ExecCall
}

// NewFakeExecutor creates an executor where every unscripted call succeeds
func NewFakeExecutor() *FakeExecutor {
	return &FakeExecutor{
		responses:  map[string][]git.CommandResult{},
		Unscripted: git.CommandResult{Succeeded: true},
	}
}

// On queues a response for an argument line
func (f *FakeExecutor) On(line string, result git.CommandResult) *FakeExecutor {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[line] = append(f.responses[line], result)
	return f
}

// Succeed queues a successful response with output
func (f *FakeExecutor) Succeed(line, output string) *FakeExecutor {
	return f.On(line, git.CommandResult{Output: output, Succeeded: true})
}

// Fail queues a failed response with output
func (f *FakeExecutor) Fail(line, output string) *FakeExecutor {
	return f.On(line, git.CommandResult{Output: output, Succeeded: false})
}

// Execute implements git.Executor
func (f *FakeExecutor) Execute(_ context.Context, capture bool, args ...string) git.CommandResult {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := ExecCall{Args: append([]string{}, args...), Capture: capture}
	f.Calls = append(f.Calls, call)

	queue := f.responses[call.Line()]
	if len(queue) == 0 {
		return f.Unscripted
	}
	result := queue[0]
	if len(queue) > 1 {
		f.responses[call.Line()] = queue[1:]
	}
	if !capture {
		// Streamed invocations never carry output
		result.Output = ""
	}
	return result
}

// Lines returns every call as a joined argument line, in order
func (f *FakeExecutor) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, len(f.Calls))
	for i, call := range f.Calls {
		lines[i] = call.Line()
	}
	return lines
}

// Called reports whether line was executed at least once
func (f *FakeExecutor) Called(line string) bool {
	return slices.Contains(f.Lines(), line)
}

// CallFor returns the first call matching line
func (f *FakeExecutor) CallFor(line string) (ExecCall, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, call := range f.Calls {
		if call.Line() == line {
			return call, true
		}
	}
	return ExecCall{}, false
}

// MutationCalls returns the calls that change the repository or its refs
func (f *FakeExecutor) MutationCalls() []string {
	mutations := []string{}
	for _, line := range f.Lines() {
		if isMutation(strings.Fields(line)) {
			mutations = append(mutations, line)
		}
	}
	return mutations
}

func isMutation(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "checkout", "add", "commit", "fetch", "rebase", "reset", "clean", "stash":
		return true
	case "branch":
		return slices.Contains(args, "-d") || slices.Contains(args, "-D")
	case "remote":
		return len(args) > 1 && args[1] == "prune"
	}
	return false
}
