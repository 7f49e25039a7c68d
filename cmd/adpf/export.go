package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/export"
	"github.com/vanderheijden86/adpf/pkg/metrics"
)

type exportOptions struct {
	out      string
	formats  []string
	wizard   bool
	logoSize int
	stats    bool
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the site as a static bundle",
		Long: `Writes the selected formats into an output directory:

  markdown  index.md       GitHub-flavored markdown
  html      index.html     single page site
  json      adpf.json      content registry
  sqlite    adpf.sqlite3   queryable database with full-text search
  svg       logo.svg       logo
  png       logo.png       logo raster

Defaults come from the export section of the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _ := loadConfig(cmd, root)
			if !cmd.Flags().Changed("out") && cfg.Export.OutputDir != "" {
				opts.out = cfg.Export.OutputDir
			}
			if !cmd.Flags().Changed("format") && len(cfg.Export.Formats) > 0 {
				opts.formats = cfg.Export.Formats
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runExport(ctx, cmd, opts)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.out, "out", "o", "site", "output directory")
	f.StringSliceVarP(&opts.formats, "format", "f", []string{"all"}, "formats to write (markdown, html, json, sqlite, svg, png, all)")
	f.BoolVar(&opts.wizard, "wizard", false, "choose formats and directory interactively")
	f.IntVar(&opts.logoSize, "logo-size", export.DefaultLogoSize, "edge length of logo.png in pixels")
	f.BoolVar(&opts.stats, "stats", false, "print per-format timings as JSON")
	return cmd
}

func runExport(ctx context.Context, cmd *cobra.Command, opts *exportOptions) error {
	reg := content.Default()

	var bundle export.Options
	if opts.wizard {
		wcfg, err := export.NewWizard(opts.out, formatNames(opts.formats)).Run()
		if errors.Is(err, export.ErrWizardCancelled) {
			fmt.Fprintln(cmd.OutOrStdout(), "Export cancelled.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("wizard: %w", err)
		}
		if bundle, err = wcfg.Options(reg); err != nil {
			return err
		}
	} else {
		formats, err := export.ParseFormats(opts.formats)
		if err != nil {
			return err
		}
		bundle = export.Options{OutputDir: opts.out, Formats: formats, Registry: reg}
	}
	bundle.LogoSize = opts.logoSize

	res, err := export.Bundle(ctx, bundle)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, f := range res.Files {
		fmt.Fprintf(out, "wrote %s\n", f)
	}
	if opts.stats {
		data, err := json.MarshalIndent(metrics.AllTimingStats(), "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
	}
	return nil
}

// formatNames canonicalizes aliases and "all" so the wizard can preselect
// them. Unparseable input preselects nothing.
func formatNames(names []string) []string {
	formats, err := export.ParseFormats(names)
	if err != nil {
		return nil
	}
	out := make([]string, len(formats))
	for i, f := range formats {
		out[i] = string(f)
	}
	return out
}
