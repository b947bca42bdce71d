// Package main provides the CLI entry point for silsilah-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ukaji3/silsilah-go/internal/config"
	"github.com/ukaji3/silsilah-go/pkg/silsilah"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/parser"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/source"
)

var (
	sourceLocation string
	format         string
	boundary       string
	duplicates     string
	sheet          string
	verbose        bool

	outputPath   string
	pretty       bool
	outputFormat string
	markup       bool

	addr      string
	watchFile bool

	cfg    *config.Config
	logger *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "silsilah",
		Short: "Render a family genealogy tree from a published spreadsheet",
		Long: `silsilah-go reads a family sheet published as CSV (or XLSX),
builds the couple → child → grandchild tree and lets you search it
from the command line or in the browser.`,
		SilenceUsage:      true,
		PersistentPreRunE: setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&sourceLocation, "source", "s", "", "Sheet URL or file path (default: SILSILAH_SOURCE or the published family sheet)")
	flags.StringVar(&format, "format", "", "Payload format: auto, csv, or xlsx")
	flags.StringVar(&boundary, "boundary", "", "Grandchild boundary: all or legacy")
	flags.StringVar(&duplicates, "duplicates", "", "Repeated labels: keep, merge, or replace")
	flags.StringVar(&sheet, "sheet", "", "Worksheet to read from XLSX input (default: the first sheet with a family header)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(newParseCmd(), newSearchCmd(), newServeCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	zapCfg := zap.NewProductionConfig()
	level, err := zapcore.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level: %s", cfg.Log.Level)
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("source") {
		c.Source.Location = sourceLocation
	}
	if flags.Changed("format") {
		f, err := source.ParseFormat(format)
		if err != nil {
			return err
		}
		c.Source.Format = f
	}
	if flags.Changed("boundary") {
		b, err := parser.ParseBoundary(boundary)
		if err != nil {
			return err
		}
		c.Parse.Boundary = b
	}
	if flags.Changed("duplicates") {
		p, err := parser.ParseDuplicatePolicy(duplicates)
		if err != nil {
			return err
		}
		c.Parse.Duplicates = p
	}
	if flags.Changed("sheet") {
		c.Parse.Sheet = sheet
	}
	if flags.Changed("addr") {
		c.Server.Addr = addr
	}
	if flags.Changed("watch") {
		c.Server.Watch = watchFile
	}
	return c.Validate()
}

// newLoader opens the configured source.
func newLoader() (*silsilah.Loader, error) {
	src, err := source.Open(cfg.Source.Location, cfg.SourceOptions())
	if err != nil {
		return nil, err
	}
	return silsilah.NewLoader(src, silsilah.Options{
		Parse:  cfg.ParseOptions(),
		Logger: logger,
	}), nil
}

// loadOnce runs a single fetch-and-parse cycle.
func loadOnce(ctx context.Context) (*silsilah.Snapshot, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, err
	}
	defer loader.Close()
	return loader.Refresh(ctx)
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

// writeOutput writes data to --output or stdout.
func writeOutput(data []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := os.Stdout.Write(append(data, '\n'))
	return err
}
