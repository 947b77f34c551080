package report

import (
	"errors"
	"time"
)

var (
	// ErrNoSelector is returned when a result does not reference the selector it checked.
	ErrNoSelector = errors.New("result must reference a selector")

	// ErrNoAssertion is returned when a result does not name the assertion it ran.
	ErrNoAssertion = errors.New("result must name an assertion")
)

// TestResult is one outcome record for a single executed assertion. Every
// result references an assertion that was actually requested; the renderer
// never synthesizes results.
//
// When the engine raised an error instead of producing a value, Actual is nil
// and the error text is recorded in Error. Actual never carries error text.
type TestResult struct {
	Suite      string    `json:"suite,omitempty"`
	Selector   string    `json:"selector"`
	Assertion  string    `json:"assertion"`
	Expected   string    `json:"expected,omitempty"`
	Actual     *string   `json:"actual"`
	Error      string    `json:"error,omitempty"`
	Passed     bool      `json:"passed"`
	Timestamp  time.Time `json:"timestamp"`
	Screenshot string    `json:"screenshot,omitempty"`
	Video      string    `json:"video,omitempty"`
}

// Validate checks that the result identifies what it checked.
func (r TestResult) Validate() error {
	if r.Selector == "" {
		return ErrNoSelector
	}
	if r.Assertion == "" {
		return ErrNoAssertion
	}
	return nil
}

// Accumulator collects TestResults across a run. Callers create one per run
// and pass it explicitly; there is no package-level result state.
type Accumulator struct {
	results []TestResult
}

// NewAccumulator returns an empty accumulator.
func NewAccumulator() *Accumulator {
	return &Accumulator{}
}

// Add appends one result, stamping the current time if the result has none.
func (a *Accumulator) Add(r TestResult) {
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now()
	}
	a.results = append(a.results, r)
}

// Pass records a passing result for the given assertion.
func (a *Accumulator) Pass(suite, selector, assertion, expected, actual string) {
	a.Add(TestResult{
		Suite:     suite,
		Selector:  selector,
		Assertion: assertion,
		Expected:  expected,
		Actual:    &actual,
		Passed:    true,
	})
}

// Fail records a failing result whose engine reported an error. Actual stays
// nil; the error text goes in the Error field.
func (a *Accumulator) Fail(suite, selector, assertion, expected string, err error) {
	r := TestResult{
		Suite:     suite,
		Selector:  selector,
		Assertion: assertion,
		Expected:  expected,
		Passed:    false,
	}
	if err != nil {
		r.Error = err.Error()
	}
	a.Add(r)
}

// Results returns a copy of the accumulated results in insertion order.
func (a *Accumulator) Results() []TestResult {
	out := make([]TestResult, len(a.results))
	copy(out, a.results)
	return out
}

// Len returns the number of accumulated results.
func (a *Accumulator) Len() int {
	return len(a.results)
}
