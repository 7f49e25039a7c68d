package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vanderheijden86/adpf/pkg/export"
	"github.com/vanderheijden86/adpf/pkg/section"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.UI.DefaultSection != "home" {
		t.Errorf("expected default section 'home', got %q", cfg.UI.DefaultSection)
	}
	if cfg.UI.RenderMode != RenderNative {
		t.Errorf("expected render mode %q, got %q", RenderNative, cfg.UI.RenderMode)
	}
	if cfg.Export.OutputDir != "site" {
		t.Errorf("expected output dir 'site', got %q", cfg.Export.OutputDir)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFrom_NonExistent(t *testing.T) {
	t.Setenv(EnvSection, "")
	cfg, err := LoadFrom("/nonexistent/path/config.yaml")
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if cfg.StartSection() != section.Home {
		t.Errorf("expected default config, got section %v", cfg.StartSection())
	}
}

func TestLoadFrom_ValidConfig(t *testing.T) {
	t.Setenv(EnvSection, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
ui:
  default_section: mapping
  render_mode: markdown
  show_help: true

export:
  output_dir: ~/public/adpf
  formats:
    - html
    - json
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.StartSection() != section.Mapping {
		t.Errorf("expected mapping, got %v", cfg.StartSection())
	}
	if cfg.UI.RenderMode != RenderMarkdown || !cfg.UI.ShowHelp {
		t.Errorf("unexpected ui config %+v", cfg.UI)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, "public/adpf"); cfg.Export.OutputDir != want {
		t.Errorf("expected expanded output dir %q, got %q", want, cfg.Export.OutputDir)
	}
	if diff := cmp.Diff([]string{"html", "json"}, cfg.Export.Formats); diff != "" {
		t.Errorf("formats (-want +got):\n%s", diff)
	}
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("ui: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if cfg.UI.DefaultSection != "home" {
		t.Errorf("expected defaults on parse error, got %+v", cfg.UI)
	}
}

func TestLoadFrom_UnknownSection(t *testing.T) {
	t.Setenv(EnvSection, "")
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "ui:\n  default_section: blog\n  render_mode: fancy\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, section.ErrUnknownSection) {
		t.Errorf("expected ErrUnknownSection, got %v", err)
	}
	if !strings.Contains(err.Error(), "render_mode") {
		t.Errorf("expected render mode problem reported too, got %v", err)
	}
	if cfg.StartSection() != section.Default {
		t.Errorf("unknown section should fall back to default, got %v", cfg.StartSection())
	}
}

func TestValidate_ExportSettings(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"aliases and all", func(c *Config) { c.Export.Formats = []string{"md", "db", "all"} }, ""},
		{"no formats", func(c *Config) { c.Export.Formats = nil }, ""},
		{"unknown format", func(c *Config) { c.Export.Formats = []string{"html", "pdf"} }, "export.formats"},
		{"empty output dir", func(c *Config) { c.Export.OutputDir = "  " }, "export.output_dir"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected %s error, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestLoadFrom_ReportsBadExportSettings(t *testing.T) {
	t.Setenv(EnvSection, "")
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "export:\n  output_dir: \"\"\n  formats: [html, pdf]\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFrom(path)
	if !errors.Is(err, export.ErrUnknownFormat) {
		t.Errorf("expected ErrUnknownFormat, got %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "output_dir") {
		t.Errorf("expected output dir problem reported too, got %v", err)
	}
}

func TestLoadFrom_MissingFileValidatesEnv(t *testing.T) {
	t.Setenv(EnvSection, "blog")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, section.ErrUnknownSection) {
		t.Fatalf("expected ErrUnknownSection for a bad %s, got %v", EnvSection, err)
	}
	if cfg.StartSection() != section.Default {
		t.Errorf("expected fallback to default section, got %v", cfg.StartSection())
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv(EnvSection, "diversity")
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.StartSection() != section.Diversity {
		t.Errorf("expected env override to diversity, got %v", cfg.StartSection())
	}
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	t.Setenv(EnvSection, "")
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.UI.DefaultSection = "scale"
	cfg.UI.ShowHelp = true
	cfg.Export.Formats = []string{"sqlite"}

	if err := SaveTo(cfg, path); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}
	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		in, want string
	}{
		{"~/x", filepath.Join(home, "x")},
		{"/abs", "/abs"},
		{"rel", "rel"},
	}
	for _, tt := range tests {
		if got := expandHome(tt.in); got != tt.want {
			t.Errorf("expandHome(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfigDir_XDGOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got := ConfigDir(); got != filepath.Join(dir, "adpf") {
		t.Errorf("expected %q, got %q", filepath.Join(dir, "adpf"), got)
	}
	if got := ConfigPath(); got != filepath.Join(dir, "adpf", "config.yaml") {
		t.Errorf("unexpected config path %q", got)
	}
}
