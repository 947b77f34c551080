package runner

import "context"

// FakeInvoker is an Invoker implementation for testing that returns canned
// stats and records the specs and options it was invoked with.
type FakeInvoker struct {
	Stats []RunStats
	Err   error

	// Invocations records each call's spec paths.
	Invocations [][]string
	LastOptions Options
}

// Invoke returns the canned stats or error.
func (f *FakeInvoker) Invoke(ctx context.Context, specPaths []string, opts Options) ([]RunStats, error) {
	paths := make([]string, len(specPaths))
	copy(paths, specPaths)
	f.Invocations = append(f.Invocations, paths)
	f.LastOptions = opts
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Stats, nil
}
