package report

import (
	"math"
	"path"
	"time"

	"github.com/hairizuan-noorazman/e2egen/runner"
)

// Summary holds the aggregate counts for one run.
type Summary struct {
	Total      int   `json:"total"`
	Passed     int   `json:"passed"`
	Failed     int   `json:"failed"`
	PassRate   int   `json:"pass_rate"`
	DurationMs int64 `json:"duration_ms,omitempty"`
}

// passRate returns the integer pass percentage, rounded to nearest. A run
// with no tests reports 0, never a division error.
func passRate(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// Report is the aggregated outcome of one run. It has no identity beyond the
// run that produced it; each render overwrites the previous one on disk.
// Exactly one of Results (per-assertion, direct-driver runs) or SpecRuns
// (per-spec-file, script-runner runs) is normally populated.
type Report struct {
	Title       string            `json:"title,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`
	Summary     Summary           `json:"summary"`
	Results     []TestResult      `json:"results,omitempty"`
	SpecRuns    []runner.RunStats `json:"spec_runs,omitempty"`
	Screenshots []string          `json:"screenshots,omitempty"`
	Videos      []string          `json:"videos,omitempty"`
}

// FromResults builds a report from a flat list of per-assertion results.
func FromResults(title string, results []TestResult) Report {
	rep := Report{
		Title:       title,
		GeneratedAt: time.Now(),
		Results:     results,
	}
	for _, r := range results {
		rep.Summary.Total++
		if r.Passed {
			rep.Summary.Passed++
		} else {
			rep.Summary.Failed++
		}
		if r.Screenshot != "" {
			rep.Screenshots = append(rep.Screenshots, r.Screenshot)
		}
		if r.Video != "" {
			rep.Videos = append(rep.Videos, r.Video)
		}
	}
	rep.Summary.PassRate = passRate(rep.Summary.Passed, rep.Summary.Total)
	return rep
}

// FromRunStats builds a report from the external runner's per-spec-file
// summaries. Missing optional artifacts are omitted rather than linked.
func FromRunStats(title string, stats []runner.RunStats) Report {
	rep := Report{
		Title:       title,
		GeneratedAt: time.Now(),
		SpecRuns:    stats,
	}
	for _, s := range stats {
		rep.Summary.Total += s.Tests
		rep.Summary.Passed += s.Passes
		rep.Summary.Failed += s.Failures
		rep.Summary.DurationMs += s.DurationMs
		if s.Video != "" {
			rep.Videos = append(rep.Videos, s.Video)
		}
		rep.Screenshots = append(rep.Screenshots, s.Screenshots...)
	}
	rep.Summary.PassRate = passRate(rep.Summary.Passed, rep.Summary.Total)
	return rep
}

// artifactName reduces an artifact path to its basename for display.
func artifactName(p string) string {
	return path.Base(path.Clean(p))
}
