package toolchain

import (
	"context"
	"sync"
)

// FakeRunner records invocations instead of running them.
type FakeRunner struct {
	mu    sync.Mutex
	calls []Invocation

	// Results maps a tool name to the error its invocations return.
	Results map[string]error

	// OnRun, when set, is called for every invocation and its error returned.
	OnRun func(inv Invocation) error
}

// Run records inv.
func (f *FakeRunner) Run(_ context.Context, inv Invocation) error {
	f.mu.Lock()
	f.calls = append(f.calls, inv)
	f.mu.Unlock()

	if f.OnRun != nil {
		if err := f.OnRun(inv); err != nil {
			return err
		}
	}
	if err, ok := f.Results[inv.Name]; ok {
		return err
	}
	return nil
}

// Calls returns the recorded invocations in order.
func (f *FakeRunner) Calls() []Invocation {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Invocation, len(f.calls))
	copy(out, f.calls)
	return out
}

// Names returns the program name of each recorded invocation.
func (f *FakeRunner) Names() []string {
	calls := f.Calls()
	names := make([]string, len(calls))
	for i, c := range calls {
		names[i] = c.Name
	}
	return names
}
