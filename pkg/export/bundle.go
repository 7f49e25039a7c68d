package export

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/debug"
	"github.com/vanderheijden86/adpf/pkg/metrics"
)

// DefaultLogoSize is the PNG edge length used when Options.LogoSize is unset.
const DefaultLogoSize = 256

// Options controls a bundle export.
type Options struct {
	OutputDir string
	Formats   []Format          // empty means AllFormats
	Registry  *content.Registry // nil means content.Default
	LogoSize  int               // PNG size in pixels
}

// Result lists the files a bundle wrote, in AllFormats order.
type Result struct {
	Files []string
}

// Bundle writes every requested format into opts.OutputDir concurrently.
// The first failure cancels the formats not yet started.
func Bundle(ctx context.Context, opts Options) (Result, error) {
	defer debug.LogEnterExit("export.Bundle")()
	defer metrics.Timer(metrics.ExportBundle)()

	reg := opts.Registry
	if reg == nil {
		reg = content.Default()
	}
	formats, err := bundleFormats(opts.Formats)
	if err != nil {
		return Result{}, err
	}
	size := opts.LogoSize
	if size == 0 {
		size = DefaultLogoSize
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("create output dir: %w", err)
	}

	files := make([]string, len(formats))
	g, ctx := errgroup.WithContext(ctx)
	for i, f := range formats {
		path := filepath.Join(opts.OutputDir, f.FileName())
		files[i] = path

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			done := metrics.TimerWithCallback(f.metric(), func(d time.Duration) {
				debug.With("export written",
					zap.String("format", string(f)),
					zap.String("path", path),
					zap.Duration("took", d),
				)
			})
			if err := writeFormat(f, path, reg, size); err != nil {
				return fmt.Errorf("export %s: %w", f, err)
			}
			done()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}
	return Result{Files: files}, nil
}

// bundleFormats validates the requested formats and returns them once each,
// in AllFormats order. Two writers must never share an output path.
func bundleFormats(requested []Format) ([]Format, error) {
	if len(requested) == 0 {
		return AllFormats(), nil
	}
	want := make(map[Format]bool, len(requested))
	for _, f := range requested {
		if f.FileName() == "" {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
		}
		want[f] = true
	}
	formats := make([]Format, 0, len(want))
	for _, f := range AllFormats() {
		if want[f] {
			formats = append(formats, f)
		}
	}
	return formats, nil
}

func (f Format) metric() *metrics.TimingMetric {
	switch f {
	case FormatMarkdown:
		return metrics.ExportMarkdown
	case FormatHTML:
		return metrics.ExportHTML
	case FormatJSON:
		return metrics.ExportJSON
	case FormatSQLite:
		return metrics.ExportSQLite
	case FormatSVG:
		return metrics.ExportSVG
	case FormatPNG:
		return metrics.ExportPNG
	}
	return nil
}

func writeFormat(f Format, path string, reg *content.Registry, logoSize int) error {
	site := reg.Site()
	switch f {
	case FormatMarkdown:
		return SaveMarkdownToFile(site, reg, path)
	case FormatHTML:
		data, err := HTML(site, reg)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	case FormatJSON:
		data, err := JSON(site, reg)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	case FormatSQLite:
		return SQLite(path, site, reg)
	case FormatSVG:
		out, err := os.Create(path)
		if err != nil {
			return err
		}
		LogoSVG(out, logoSize)
		return out.Close()
	case FormatPNG:
		return LogoPNG(path, logoSize)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}
