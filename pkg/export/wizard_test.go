package export

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vanderheijden86/adpf/pkg/content"
)

func TestWizardConfigOptions(t *testing.T) {
	reg := content.Default()
	cfg := WizardConfig{OutputDir: " out ", Formats: []string{"png", "html"}}

	opts, err := cfg.Options(reg)
	if err != nil {
		t.Fatalf("Options: %v", err)
	}
	if opts.OutputDir != "out" {
		t.Errorf("expected trimmed dir, got %q", opts.OutputDir)
	}
	if diff := cmp.Diff([]Format{FormatHTML, FormatPNG}, opts.Formats); diff != "" {
		t.Errorf("formats (-want +got):\n%s", diff)
	}
	if opts.Registry != reg {
		t.Error("expected registry to be passed through")
	}
}

func TestWizardConfigOptionsErrors(t *testing.T) {
	reg := content.Default()
	tests := []WizardConfig{
		{OutputDir: "out"},
		{OutputDir: "", Formats: []string{"html"}},
		{OutputDir: "out", Formats: []string{"gif"}},
	}
	for _, cfg := range tests {
		if _, err := cfg.Options(reg); err == nil {
			t.Errorf("expected error for %+v", cfg)
		}
	}
}

func TestFormatOptionsListsEveryFormat(t *testing.T) {
	opts := formatOptions([]string{"md", "svg"})
	if len(opts) != len(AllFormats()) {
		t.Fatalf("expected %d options, got %d", len(AllFormats()), len(opts))
	}
	for i, f := range AllFormats() {
		if opts[i].Value != string(f) {
			t.Errorf("option %d = %q, want %q", i, opts[i].Value, f)
		}
	}
}

func TestNewWizardDefaults(t *testing.T) {
	w := NewWizard("site", []string{"html"})
	cfg := w.GetConfig()
	if cfg.OutputDir != "site" || !cfg.Confirmed {
		t.Errorf("unexpected defaults %+v", cfg)
	}
}
