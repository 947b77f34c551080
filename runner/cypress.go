package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/hairizuan-noorazman/e2egen/logger"
)

// driverScript runs the specs through the Cypress module API and writes the
// full runs[] summary to the result file given as its first argument. The CLI
// is not an option here: `cypress run --reporter json` prints per-spec Mocha
// stats interleaved with the run banner, so its stdout never parses.
const driverScript = `const cypress = require('cypress');
const fs = require('fs');

const [outFile, specs, browser, headless] = process.argv.slice(2);

cypress
  .run({
    spec: specs,
    browser: browser || undefined,
    headless: headless === 'true',
  })
  .then((results) => {
    fs.writeFileSync(outFile, JSON.stringify(results));
    process.exit(0);
  })
  .catch((err) => {
    console.error(err);
    process.exit(1);
  });
`

// driverScriptName is the driver file written into the work directory, where
// the project's cypress install resolves.
const driverScriptName = ".e2egen-runner.js"

// CypressInvoker executes generated spec files through the Cypress module
// API via a small node driver script and parses the result file it writes.
// Failing tests are not an invocation failure; they surface through
// RunStats.Failures. Only a run that produces no usable summary is treated
// as failed.
type CypressInvoker struct {
	// Bin is the node executable.
	Bin string

	// WorkDir is the directory the runner is invoked from.
	WorkDir string

	logger logger.Logger
}

// NewCypressInvoker creates an invoker running node from the given work
// directory.
func NewCypressInvoker(workDir string, log logger.Logger) *CypressInvoker {
	return &CypressInvoker{
		Bin:     "node",
		WorkDir: workDir,
		logger:  log,
	}
}

// Invoke runs the given spec files and returns one RunStats per spec.
func (c *CypressInvoker) Invoke(ctx context.Context, specPaths []string, opts Options) ([]RunStats, error) {
	if len(specPaths) == 0 {
		return nil, ErrNoSpecs
	}

	scriptPath, err := writeDriverScript(c.WorkDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRunnerInvocationFailed, err)
	}

	outFile := filepath.Join(os.TempDir(), fmt.Sprintf("e2egen-run-%d.json", time.Now().UnixNano()))
	defer os.Remove(outFile)

	args := buildRunArgs(scriptPath, outFile, specPaths, opts)
	cmd := exec.CommandContext(ctx, c.Bin, args...)
	cmd.Dir = c.WorkDir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	c.logger.Info(ctx, "invoking external runner", logger.Fields{
		"bin":   c.Bin,
		"specs": len(specPaths),
	})

	runErr := cmd.Run()

	if raw, readErr := os.ReadFile(outFile); readErr == nil {
		if stats, parseErr := ParseRunStats(raw); parseErr == nil {
			return stats, nil
		}
	}

	msg := strings.TrimSpace(stderr.String())
	if msg == "" && runErr != nil {
		msg = runErr.Error()
	}
	if msg == "" {
		msg = "runner produced no usable summary"
	}
	return nil, fmt.Errorf("%w: %s", ErrRunnerInvocationFailed, msg)
}

// writeDriverScript places the module-API driver in the work directory,
// overwriting any previous copy, and returns its path.
func writeDriverScript(workDir string) (string, error) {
	scriptPath := filepath.Join(workDir, driverScriptName)
	if err := os.WriteFile(scriptPath, []byte(driverScript), 0644); err != nil {
		return "", fmt.Errorf("failed to write driver script: %v", err)
	}
	return scriptPath, nil
}

// buildRunArgs assembles the driver script's argument list.
func buildRunArgs(scriptPath, outFile string, specPaths []string, opts Options) []string {
	return []string{
		scriptPath,
		outFile,
		strings.Join(specPaths, ","),
		opts.Browser,
		strconv.FormatBool(opts.Headless),
	}
}

// engineOutput mirrors the module API's run summary.
type engineOutput struct {
	Runs []engineRun `json:"runs"`
}

type engineRun struct {
	Spec struct {
		Relative string `json:"relative"`
	} `json:"spec"`
	Stats struct {
		Tests    int   `json:"tests"`
		Passes   int   `json:"passes"`
		Failures int   `json:"failures"`
		Duration int64 `json:"wallClockDuration"`
	} `json:"stats"`
	Video       string `json:"video"`
	Screenshots []struct {
		Path string `json:"path"`
	} `json:"screenshots"`
}

// ParseRunStats decodes the engine's JSON summary into per-spec RunStats.
// Missing optional artifacts (no video, no screenshots) yield empty fields.
func ParseRunStats(out []byte) ([]RunStats, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty runner output")
	}

	var decoded engineOutput
	if err := json.Unmarshal(trimmed, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode runner output: %w", err)
	}
	if len(decoded.Runs) == 0 {
		return nil, fmt.Errorf("runner output contains no runs")
	}

	stats := make([]RunStats, 0, len(decoded.Runs))
	for _, run := range decoded.Runs {
		rs := RunStats{
			SpecFile:   run.Spec.Relative,
			Tests:      run.Stats.Tests,
			Passes:     run.Stats.Passes,
			Failures:   run.Stats.Failures,
			DurationMs: run.Stats.Duration,
			Video:      run.Video,
		}
		for _, s := range run.Screenshots {
			if s.Path != "" {
				rs.Screenshots = append(rs.Screenshots, s.Path)
			}
		}
		stats = append(stats, rs)
	}
	return stats, nil
}
