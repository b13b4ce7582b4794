// pattern: Functional Core

package run

import (
	"context"
	"strings"
	"sync"
)

// Call records a single invocation made through a FakeRunner.
type Call struct {
	Dir  string
	Name string
	Args []string
}

// String renders the call as a command line, useful in test failures.
func (c Call) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// FakeRunner implements Runner for tests. Responses are matched by command
// name; unmatched commands succeed with empty output.
type FakeRunner struct {
	mu        sync.Mutex
	calls     []Call
	results   map[string]Result
	errs      map[string]error
	RunAlways func(call Call) (Result, error)
}

// NewFakeRunner creates a FakeRunner with no scripted responses.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		results: make(map[string]Result),
		errs:    make(map[string]error),
	}
}

// Script sets the result returned for commands with the given name.
func (f *FakeRunner) Script(name string, res Result) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results[name] = res
}

// ScriptError makes commands with the given name fail to spawn.
func (f *FakeRunner) ScriptError(name string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.errs[name] = err
}

// Run records the call and returns the scripted response.
func (f *FakeRunner) Run(_ context.Context, dir string, name string, args ...string) (Result, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	call := Call{Dir: dir, Name: name, Args: args}
	f.calls = append(f.calls, call)

	if f.RunAlways != nil {
		return f.RunAlways(call)
	}
	if err, ok := f.errs[name]; ok {
		return Result{ExitCode: -1}, err
	}
	if res, ok := f.results[name]; ok {
		return res, nil
	}
	return Result{}, nil
}

// Calls returns a copy of all recorded invocations.
func (f *FakeRunner) Calls() []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Call, len(f.calls))
	copy(out, f.calls)
	return out
}

// CallsFor returns recorded invocations of the given command name.
func (f *FakeRunner) CallsFor(name string) []Call {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Call
	for _, c := range f.calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}
