package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hairizuan-noorazman/e2egen/logger"
	"github.com/hairizuan-noorazman/e2egen/report"
)

func newReportCmd() *cobra.Command {
	var fromJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Re-render reports from stored artifacts",
		Long:  `Rebuilds ui-test-report.html from the stored screenshots, and optionally re-renders report.html from an existing report.json.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.NewLogrusLogger(cfg.Log.Level)

			store, err := newArtifactStore(cfg)
			if err != nil {
				return err
			}
			renderer := report.NewRenderer(store, log)

			if fromJSON {
				rep, err := report.Load(ctx, store, report.JSONFileName)
				if err != nil {
					return err
				}
				if err := renderer.Render(ctx, rep); err != nil {
					return err
				}
				printSummary(rep.Summary)
			}

			return renderer.RenderRouteViewport(ctx, "screenshots")
		},
	}

	cmd.Flags().BoolVar(&fromJSON, "from-json", false, "also re-render report.html from the stored report.json")
	return cmd
}
