package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hairizuan-noorazman/e2egen/history"
	"github.com/hairizuan-noorazman/e2egen/logger"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect recorded runs",
	}
	cmd.AddCommand(newHistoryListCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var limit, offset int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			log := logger.NewLogrusLogger(cfg.Log.Level)

			store, err := history.NewSQLiteStore(cfg.History.Path, log)
			if err != nil {
				return err
			}

			runs, err := store.List(ctx, limit, offset)
			if err != nil {
				return err
			}

			fmt.Printf("%-36s  %-20s  %-10s  %-8s  %6s  %6s  %6s\n",
				"ID", "PLAN", "TARGET", "STATUS", "TESTS", "FAILED", "RATE")
			for _, r := range runs {
				fmt.Printf("%-36s  %-20s  %-10s  %-8s  %6d  %6d  %5d%%\n",
					r.ID, r.PlanName, r.Target, r.Status, r.Tests, r.Failed, r.PassRate)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of runs to list")
	cmd.Flags().IntVar(&offset, "offset", 0, "number of runs to skip")
	return cmd
}
