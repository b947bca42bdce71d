package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ukaji3/silsilah-go/internal/server"
	"github.com/ukaji3/silsilah-go/internal/watch"
	"github.com/ukaji3/silsilah-go/pkg/silsilah"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/models"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/output"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/search"
	"github.com/ukaji3/silsilah-go/pkg/silsilah/source"
)

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Fetch the sheet and print the family tree",
		Args:  cobra.NoArgs,
		RunE:  runParse,
	}
	addOutputFlags(cmd)
	return cmd
}

func newSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <term>",
		Short: "Fetch the sheet and print the part of the tree matching a term",
		Args:  cobra.ExactArgs(1),
		RunE:  runSearch,
	}
	addOutputFlags(cmd)
	cmd.Flags().BoolVar(&markup, "highlight", false, "Print an indented outline with matches highlighted")
	return cmd
}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the searchable family tree over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: SILSILAH_ADDR or :8080)")
	cmd.Flags().BoolVar(&watchFile, "watch", false, "Reload when a file source changes on disk")
	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	cmd.Flags().StringVar(&outputFormat, "output-format", "json", "Output format: json or yaml")
}

func runParse(cmd *cobra.Command, args []string) error {
	snap, err := loadOnce(cmd.Context())
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}

	var data []byte
	switch outputFormat {
	case "json":
		data, err = output.ToJSON(snap.Hierarchy, pretty)
	case "yaml":
		data, err = output.ToYAML(snap.Hierarchy)
	default:
		return fmt.Errorf("invalid output format: %s (must be json or yaml)", outputFormat)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(data)
}

func runSearch(cmd *cobra.Command, args []string) error {
	term := args[0]

	snap, err := loadOnce(cmd.Context())
	if err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	filtered := search.Filter(snap.Hierarchy, term)

	if markup {
		return writeOutput([]byte(outline(filtered, term)))
	}

	var data []byte
	switch outputFormat {
	case "json":
		data, err = output.ResultToJSON(term, filtered, pretty)
	case "yaml":
		data, err = output.ResultToYAML(term, filtered)
	default:
		return fmt.Errorf("invalid output format: %s (must be json or yaml)", outputFormat)
	}
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return writeOutput(data)
}

// outline renders the tree as indented text with highlight markup.
func outline(h *models.Hierarchy, term string) string {
	if h.Empty() {
		return "Tidak ada hasil yang ditemukan."
	}

	hl := search.NewHighlighter(term)
	var b strings.Builder
	for _, couple := range h.Couples {
		fmt.Fprintln(&b, hl.String(search.CleanCoupleLabel(couple.Label)))
		for _, c := range couple.Children {
			line := "  " + hl.String(search.CleanChildLabel(c.Label))
			if c.Status != "" {
				line += " (" + hl.String(c.Status) + ")"
			}
			var spouses []string
			for _, s := range c.Spouses {
				sp := hl.String(s.Name)
				if s.Status != "" {
					sp += " (" + hl.String(s.Status) + ")"
				}
				spouses = append(spouses, sp)
			}
			if len(spouses) > 0 {
				line += " - Pasangan: " + strings.Join(spouses, ", ")
			}
			fmt.Fprintln(&b, line)
			for i, gc := range c.Grandchildren {
				fmt.Fprintf(&b, "    %d. %s\n", i+1, hl.String(search.DisplayGrandchild(gc)))
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext()
	defer stop()

	loader, err := newLoader()
	if err != nil {
		return err
	}
	defer loader.Close()

	// A failed first load is not fatal: the page reports the data as
	// unavailable until a later refresh succeeds.
	if _, err := loader.Refresh(ctx); err != nil {
		logger.Warn("initial load failed", zap.Error(err))
	}

	if cfg.Server.RefreshInterval > 0 {
		go loader.Poll(ctx, cfg.Server.RefreshInterval)
	}

	if cfg.Server.Watch {
		if err := startWatcher(ctx, loader); err != nil {
			return err
		}
	}

	srv, err := server.New(loader, logger)
	if err != nil {
		return err
	}
	return srv.Run(ctx, cfg.Server.Addr)
}

// startWatcher refreshes loader whenever its file source changes.
func startWatcher(ctx context.Context, loader *silsilah.Loader) error {
	file, ok := loader.Source().(*source.File)
	if !ok {
		return fmt.Errorf("--watch needs a file source, got %s", loader.Source())
	}

	fw, err := watch.New(file.Path, func() {
		if _, err := loader.Refresh(ctx); err != nil && !errors.Is(err, silsilah.ErrSuperseded) {
			logger.Warn("reload after file change failed", zap.Error(err))
		}
	}, logger)
	if err != nil {
		return err
	}

	go func() {
		<-ctx.Done()
		_ = fw.Close()
	}()
	go fw.Run(ctx)
	return nil
}
