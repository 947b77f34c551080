package main

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/hairizuan-noorazman/e2egen/assembler"
	"github.com/hairizuan-noorazman/e2egen/history"
	"github.com/hairizuan-noorazman/e2egen/logger"
	"github.com/hairizuan-noorazman/e2egen/plan"
	"github.com/hairizuan-noorazman/e2egen/report"
	"github.com/hairizuan-noorazman/e2egen/runner"
	"github.com/hairizuan-noorazman/e2egen/storage"
	"github.com/hairizuan-noorazman/e2egen/target/roddriver"
)

func newRunCmd() *cobra.Command {
	var planFile string
	var targetName string
	var browser string
	var headless bool
	var headlessSet bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Generate specs, execute them and render reports",
		Long:  `Compiles the plan, executes it through the chosen target (cypress generates and runs spec files through the external runner; rod drives a browser directly), and writes report.json, report.html and ui-test-report.html under the output directory.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			headlessSet = cmd.Flags().Changed("headless")

			ctx := cmd.Context()

			cfg, err := LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.NewLogrusLogger(cfg.Log.Level)

			p, err := plan.LoadFile(planFile)
			if err != nil {
				return err
			}

			if cfg.Output.StorageType != "local" {
				return fmt.Errorf("run requires local output storage; use generate plus your own runner for %s storage", cfg.Output.StorageType)
			}
			store, err := storage.NewLocalStorage(cfg.Output.BaseDir)
			if err != nil {
				return err
			}

			// Artifact names are deterministic, so two concurrent runs in the
			// same output directory would clobber each other's files. An
			// advisory lock serializes them.
			lock := flock.New(filepath.Join(cfg.Output.BaseDir, ".e2egen.lock"))
			if err := lock.Lock(); err != nil {
				return fmt.Errorf("failed to lock output directory: %w", err)
			}
			defer lock.Unlock()

			opts := runner.OptionsFromEnv()
			if browser != "" {
				opts.Browser = browser
			} else if cfg.Runner.Browser != "" {
				opts.Browser = cfg.Runner.Browser
			}
			if headlessSet {
				opts.Headless = headless
			}

			runs, err := history.NewSQLiteStore(cfg.History.Path, log)
			if err != nil {
				return err
			}
			record := &history.Run{
				PlanName: p.Name,
				Target:   targetName,
				Suites:   len(p.Expand()),
			}
			if err := runs.Create(ctx, record); err != nil {
				return err
			}

			rep, runErr := executePlan(ctx, cfg, store, log, p, targetName, opts)
			if runErr != nil {
				_ = runs.Update(ctx, record.ID.String(),
					history.SetCompleted(history.StatusErrored, 0, 0, 0, 0),
					history.SetError(runErr.Error()),
				)
				return runErr
			}

			status := history.StatusPassed
			if rep.Summary.Failed > 0 {
				status = history.StatusFailed
			}
			if err := runs.Update(ctx, record.ID.String(),
				history.SetCompleted(status, rep.Summary.Total, rep.Summary.Passed, rep.Summary.Failed, rep.Summary.PassRate),
			); err != nil {
				return err
			}

			renderer := report.NewRenderer(store, log)
			if err := renderer.Render(ctx, rep); err != nil {
				return err
			}
			if err := renderer.RenderRouteViewport(ctx, "screenshots"); err != nil {
				return err
			}

			printSummary(rep.Summary)
			return nil
		},
	}

	cmd.Flags().StringVarP(&planFile, "plan", "p", "e2e-plan.yaml", "plan file path")
	cmd.Flags().StringVarP(&targetName, "target", "t", "cypress", "execution target (cypress or rod)")
	cmd.Flags().StringVar(&browser, "browser", "", "browser to run in (overrides config)")
	cmd.Flags().BoolVar(&headless, "headless", false, "run headless (defaults to headless on CI)")
	return cmd
}

// executePlan runs the plan through the chosen target and aggregates a report.
func executePlan(ctx context.Context, cfg *Config, store *storage.LocalStorage, log logger.Logger, p *plan.Plan, targetName string, opts runner.Options) (report.Report, error) {
	switch targetName {
	case "cypress":
		return runScripted(ctx, cfg, store, log, p, opts)
	case "rod":
		return runDirect(ctx, store, log, p, opts)
	default:
		return report.Report{}, fmt.Errorf("unknown execution target %q (expected cypress or rod)", targetName)
	}
}

// runScripted compiles the plan into spec files and hands them to the
// external runner.
func runScripted(ctx context.Context, cfg *Config, store *storage.LocalStorage, log logger.Logger, p *plan.Plan, opts runner.Options) (report.Report, error) {
	tgt, err := scriptTargetFor("cypress")
	if err != nil {
		return report.Report{}, err
	}

	writer := assembler.NewWriter(store, cfg.Output.SpecDir, log)
	var specPaths []string
	for _, s := range p.Expand() {
		suite, err := assembler.CompileSuite(tgt, s.Title, s.Actions, assembler.Options{})
		if err != nil {
			return report.Report{}, err
		}
		key, err := writer.Write(ctx, tgt, suite)
		if err != nil {
			return report.Report{}, err
		}
		path, err := store.GetURL(ctx, key)
		if err != nil {
			return report.Report{}, err
		}
		specPaths = append(specPaths, path)
	}

	invoker := runner.NewCypressInvoker(cfg.Runner.WorkDir, log)
	stats, err := invoker.Invoke(ctx, specPaths, opts)
	if err != nil {
		return report.Report{}, err
	}
	return report.FromRunStats(p.Name, stats), nil
}

// runDirect drives a browser over each suite's actions and aggregates the
// per-assertion results.
func runDirect(ctx context.Context, store *storage.LocalStorage, log logger.Logger, p *plan.Plan, opts runner.Options) (report.Report, error) {
	driver := roddriver.New(store, log)
	suites := p.Expand()

	var results []report.TestResult
	for _, s := range suites {
		suiteResults, err := driver.Run(ctx, s.Title, s.Actions, opts)
		if err != nil {
			return report.Report{}, err
		}
		results = append(results, suiteResults...)
	}

	rep := report.FromResults(p.Name, results)
	if shots, err := store.List(ctx, "screenshots"); err == nil {
		rep.Screenshots = filterRunScreenshots(shots, suites)
	}
	return rep, nil
}

// filterRunScreenshots keeps only the screenshots named after this run's
// route/viewport pairs. The output directory accumulates files across runs,
// so an unfiltered listing would attach another plan's screenshots to the
// report.
func filterRunScreenshots(keys []string, suites []plan.SuiteActions) []string {
	prefixes := make([]string, 0, len(suites))
	for _, s := range suites {
		prefixes = append(prefixes, s.Route+"-"+s.Viewport+"-")
	}

	var kept []string
	for _, key := range keys {
		base := path.Base(key)
		for _, prefix := range prefixes {
			if strings.HasPrefix(base, prefix) {
				kept = append(kept, key)
				break
			}
		}
	}
	return kept
}
