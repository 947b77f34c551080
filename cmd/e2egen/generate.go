package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hairizuan-noorazman/e2egen/assembler"
	"github.com/hairizuan-noorazman/e2egen/logger"
	"github.com/hairizuan-noorazman/e2egen/plan"
)

func newGenerateCmd() *cobra.Command {
	var planFile string
	var targetName string
	var stopOnError bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Compile a plan into spec files for a script target",
		RunE: func(cmd *cobra.Command, args []string) error {
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

			tgt, err := scriptTargetFor(targetName)
			if err != nil {
				return err
			}

			store, err := newArtifactStore(cfg)
			if err != nil {
				return err
			}

			writer := assembler.NewWriter(store, cfg.Output.SpecDir, log)
			opts := assembler.Options{StopOnError: stopOnError}

			for _, s := range p.Expand() {
				suite, err := assembler.CompileSuite(tgt, s.Title, s.Actions, opts)
				if err != nil {
					return err
				}
				key, err := writer.Write(ctx, tgt, suite)
				if err != nil {
					return err
				}
				fmt.Println(key)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&planFile, "plan", "p", "e2e-plan.yaml", "plan file path")
	cmd.Flags().StringVarP(&targetName, "target", "t", "cypress", "script target (cypress or playwright)")
	cmd.Flags().BoolVar(&stopOnError, "stop-on-error", false, "abort at the first action that fails to compile")
	return cmd
}
