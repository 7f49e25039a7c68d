package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vanderheijden86/adpf/pkg/metrics"
)

func TestBundleAllFormats(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	res, err := Bundle(context.Background(), Options{OutputDir: dir, LogoSize: 64})
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	var want []string
	for _, f := range AllFormats() {
		want = append(want, filepath.Join(dir, f.FileName()))
	}
	if diff := cmp.Diff(want, res.Files); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
	for _, p := range res.Files {
		info, err := os.Stat(p)
		if err != nil {
			t.Errorf("missing %s: %v", p, err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("%s is empty", p)
		}
	}
}

func TestBundleSubset(t *testing.T) {
	dir := t.TempDir()
	res, err := Bundle(context.Background(), Options{
		OutputDir: dir,
		Formats:   []Format{FormatJSON, FormatMarkdown},
	})
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	// Written in AllFormats order, not request order.
	want := []string{filepath.Join(dir, "index.md"), filepath.Join(dir, "adpf.json")}
	if diff := cmp.Diff(want, res.Files); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
	if _, err := os.Stat(filepath.Join(dir, "index.html")); !os.IsNotExist(err) {
		t.Error("html should not be written")
	}
}

func TestBundleRepeatedFormatsWrittenOnce(t *testing.T) {
	dir := t.TempDir()
	res, err := Bundle(context.Background(), Options{
		OutputDir: dir,
		Formats:   []Format{FormatSQLite, FormatJSON, FormatSQLite, FormatSQLite},
	})
	if err != nil {
		t.Fatalf("Bundle: %v", err)
	}
	want := []string{filepath.Join(dir, "adpf.json"), filepath.Join(dir, "adpf.sqlite3")}
	if diff := cmp.Diff(want, res.Files); diff != "" {
		t.Errorf("files (-want +got):\n%s", diff)
	}
}

func TestBundleFormats(t *testing.T) {
	tests := []struct {
		name      string
		requested []Format
		want      []Format
		wantErr   bool
	}{
		{"empty means all", nil, AllFormats(), false},
		{"duplicates dropped", []Format{FormatPNG, FormatPNG, FormatSVG}, []Format{FormatSVG, FormatPNG}, false},
		{"reordered", []Format{FormatJSON, FormatMarkdown}, []Format{FormatMarkdown, FormatJSON}, false},
		{"unknown", []Format{FormatJSON, "pdf"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := bundleFormats(tt.requested)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownFormat) {
					t.Fatalf("expected ErrUnknownFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("bundleFormats: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("formats (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBundleUnknownFormat(t *testing.T) {
	_, err := Bundle(context.Background(), Options{OutputDir: t.TempDir(), Formats: []Format{"pdf"}})
	if !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestBundleCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Bundle(ctx, Options{OutputDir: t.TempDir(), Formats: []Format{FormatMarkdown}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestBundlePropagatesWriteErrors(t *testing.T) {
	dir := t.TempDir()
	// A directory where the PNG should go makes that write fail.
	if err := os.Mkdir(filepath.Join(dir, FormatPNG.FileName()), 0o755); err != nil {
		t.Fatal(err)
	}
	_, err := Bundle(context.Background(), Options{OutputDir: dir, Formats: []Format{FormatPNG}})
	if err == nil {
		t.Error("expected write error")
	}
}

func TestBundleRecordsTimings(t *testing.T) {
	metrics.SetEnabled(true)
	metrics.ResetAll()
	t.Cleanup(metrics.ResetAll)

	if _, err := Bundle(context.Background(), Options{OutputDir: t.TempDir(), Formats: []Format{FormatJSON, FormatSVG}}); err != nil {
		t.Fatalf("Bundle: %v", err)
	}

	for _, m := range []*metrics.TimingMetric{metrics.ExportJSON, metrics.ExportSVG, metrics.ExportBundle} {
		if m.Count() != 1 {
			t.Errorf("Expected one %s record, got %d", m.Name(), m.Count())
		}
	}
	if metrics.ExportHTML.Count() != 0 {
		t.Error("Expected no html timing for an unrequested format")
	}
}
