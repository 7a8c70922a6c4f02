// Package main provides the CLI entry point for xlsxcmp.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/py-simplified/comparison-tool/pkg/auth"
	"github.com/py-simplified/comparison-tool/pkg/compare"
	"github.com/py-simplified/comparison-tool/pkg/compare/report"
	"github.com/py-simplified/comparison-tool/pkg/compare/xlsx"
	"github.com/py-simplified/comparison-tool/pkg/config"
	"github.com/py-simplified/comparison-tool/pkg/logger"
)

var (
	configPath   string
	basePath     string
	textFallback bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "xlsxcmp",
		Short: "Compare Excel workbook versions and highlight differences",
		Long: `xlsxcmp compares the new and previous version of every workbook found
in the new/, prev/, and template/ folders, writes an annotated copy of
each template with differing cells highlighted (numeric cells carry the
delta, text cells the new value), and emits JSON and text summary
reports into comparison_results/.`,
		SilenceUsage: true,
		RunE:         run,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: config.yaml in cwd or executable dir)")
	rootCmd.Flags().StringVarP(&basePath, "base", "b", "", "Base directory containing new, prev, and template folders")
	rootCmd.Flags().BoolVar(&textFallback, "text-fallback", false, "Record a text difference when a numeric-looking new value fails strict parsing instead of skipping it")

	rootCmd.AddCommand(hashCmd(), fixturesCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.FindPath(configPath))
	if err != nil {
		return err
	}
	if basePath != "" {
		cfg.BasePath = basePath
	}
	if textFallback {
		cfg.TextOnParseFailure = true
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}

	if !cfg.Auth.Disabled {
		gate := auth.NewPasswordGate(cfg.Auth.PasswordHash, cfg.Auth.MaxAttempts)
		if err := gate.Authorize(); err != nil {
			return err
		}
	}

	layout := compare.DefaultLayout(cfg.BasePath)
	if cfg.OutputSuffix != "" {
		layout.OutputSuffix = cfg.OutputSuffix
	}

	engine := compare.NewEngine(
		xlsx.Opener{},
		compare.Options{TextOnParseFailure: cfg.TextOnParseFailure},
		log,
	)
	runner := compare.NewRunner(layout, engine, log)

	summary, err := runner.Run()
	if err != nil {
		return err
	}

	if err := report.Write(summary, layout.OutputDir); err != nil {
		return fmt.Errorf("writing reports: %w", err)
	}

	log.Info().
		Str("results", layout.OutputDir).
		Int("total_differences", summary.TotalDifferences).
		Int("errors", len(summary.Errors)).
		Msg("Run finished")

	return nil
}
