// Package main provides the CLI entry point for exclassify-go.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/exclassify-go/pkg/exclassify"
	"github.com/ukaji3/exclassify-go/pkg/exclassify/config"
	"github.com/ukaji3/exclassify-go/pkg/exclassify/output"
)

var (
	configPath   string
	sheets       string
	columns      string
	label        string
	defaultLabel string
	columnName   string
	reportPath   string
	pretty       bool
	verbose      bool

	logger *zap.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "exclassify [input.xlsx keyword output.xlsx]",
		Short: "Label spreadsheet rows by keyword",
		Long: `exclassify-go matches keywords against chosen columns of each row,
writes the matching label into a classification column, and restricts that
column to the known labels with a drop-down list.

Without arguments the job is read from a YAML config file. With three
arguments a single keyword is matched against the -c columns of the -s sheets.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 3 {
				return fmt.Errorf("expected no arguments or input, keyword and output, got %d", len(args))
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg := zap.NewProductionConfig()
			if verbose {
				cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			logger, err = cfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE:         run,
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "f", config.DefaultPath, "YAML config file")
	rootCmd.Flags().StringVarP(&sheets, "sheets", "s", "", "Comma-separated sheet names (single-keyword mode)")
	rootCmd.Flags().StringVarP(&columns, "columns", "c", "", "Comma-separated columns to check (single-keyword mode)")
	rootCmd.Flags().StringVar(&label, "label", config.LegacyLabel, "Label for matching rows (single-keyword mode)")
	rootCmd.Flags().StringVar(&defaultLabel, "default-label", config.LegacyDefaultLabel, "Label for other rows (single-keyword mode)")
	rootCmd.Flags().StringVar(&columnName, "column", config.LegacyColumnName, "Classification column header (single-keyword mode)")
	rootCmd.Flags().StringVar(&reportPath, "report", "", "Write the run report as JSON to this file")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print the JSON report")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	return rootCmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	report, err := exclassify.Classify(cfg.InputPath, cfg.OutputPath, cfg.Options(logger))
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if reportPath != "" {
		data, err := output.ToJSON(report, pretty)
		if err != nil {
			return fmt.Errorf("serialization failed: %w", err)
		}
		if err := os.WriteFile(reportPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
	}

	return nil
}

// loadConfig builds the job from positional arguments when given, otherwise
// from the config file.
func loadConfig(args []string) (*config.Config, error) {
	if len(args) == 0 {
		cfg, err := config.Load(configPath)
		if err != nil {
			logger.Error("Failed to load config", zap.String("path", configPath), zap.Error(err))
			return nil, err
		}
		return cfg, nil
	}

	if sheets == "" || columns == "" {
		return nil, fmt.Errorf("--sheets and --columns are required with positional arguments")
	}

	cfg := config.Legacy(args[0], args[1], args[2], sheets, columns, label)
	cfg.DefaultLabel = defaultLabel
	cfg.NewColumnName = columnName
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
