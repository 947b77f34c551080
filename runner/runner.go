package runner

import (
	"context"
	"errors"
	"os"
)

var (
	// ErrRunnerInvocationFailed is returned when the external engine reports a
	// non-success outcome (non-zero exit with no usable results, missing
	// binary, unparsable output). The engine's own message is wrapped in.
	ErrRunnerInvocationFailed = errors.New("runner invocation failed")

	// ErrNoSpecs is returned when Invoke is called with no spec files.
	ErrNoSpecs = errors.New("no spec files to run")
)

// Options is the options bag passed to the external engine.
type Options struct {
	Browser  string `json:"browser"`
	Headless bool   `json:"headless"`
}

// OptionsFromEnv derives default options from the environment: headless when
// a CI indicator is set, Chrome otherwise unchanged.
func OptionsFromEnv() Options {
	return Options{
		Browser:  "chrome",
		Headless: os.Getenv("CI") != "",
	}
}

// RunStats is the per-spec-file statistics block the external engine reports.
type RunStats struct {
	SpecFile    string   `json:"spec_file"`
	Tests       int      `json:"tests"`
	Passes      int      `json:"passes"`
	Failures    int      `json:"failures"`
	DurationMs  int64    `json:"duration_ms"`
	Video       string   `json:"video,omitempty"`
	Screenshots []string `json:"screenshots,omitempty"`
}

// Invoker runs a set of generated spec files through an external engine and
// returns one RunStats per spec. The call is synchronous and is never
// retried; cancellation is the caller's context's concern.
type Invoker interface {
	Invoke(ctx context.Context, specPaths []string, opts Options) ([]RunStats, error)
}
