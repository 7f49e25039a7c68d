// Package config handles loading and saving adpf configuration.
//
// Configuration follows the XDG Base Directory specification:
//   - Config: ~/.config/adpf/config.yaml
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"gopkg.in/yaml.v3"

	"github.com/vanderheijden86/adpf/pkg/export"
	"github.com/vanderheijden86/adpf/pkg/section"
)

// Render modes for the section display.
const (
	RenderNative   = "native"
	RenderMarkdown = "markdown"
)

// EnvSection overrides UI.DefaultSection when set.
const EnvSection = "ADPF_SECTION"

// UIConfig holds display preferences.
type UIConfig struct {
	DefaultSection string `yaml:"default_section,omitempty"` // section tag shown at startup
	RenderMode     string `yaml:"render_mode,omitempty"`     // native, markdown
	ShowHelp       bool   `yaml:"show_help,omitempty"`       // start with the full key help expanded
}

// ExportConfig controls static export defaults.
type ExportConfig struct {
	OutputDir string   `yaml:"output_dir,omitempty"`
	Formats   []string `yaml:"formats,omitempty"`
}

// Config is the top-level configuration for adpf.
type Config struct {
	UI     UIConfig     `yaml:"ui,omitempty"`
	Export ExportConfig `yaml:"export,omitempty"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		UI: UIConfig{
			DefaultSection: section.Default.String(),
			RenderMode:     RenderNative,
		},
		Export: ExportConfig{
			OutputDir: "site",
			Formats:   []string{"html", "markdown", "svg"},
		},
	}
}

// ConfigDir returns the XDG config directory for adpf.
func ConfigDir() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "adpf")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "adpf")
}

// ConfigPath returns the full path to config.yaml.
func ConfigPath() string {
	dir := ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Load reads the config file from the XDG config directory.
// Returns DefaultConfig if the file doesn't exist.
func Load() (Config, error) {
	path := ConfigPath()
	if path == "" {
		return applyEnv(DefaultConfig()), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads config from a specific path.
// Returns DefaultConfig if the file doesn't exist; the environment is
// still applied and validated.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg = applyEnv(cfg)
			return cfg, cfg.Validate()
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parsing config: %w", err)
	}

	cfg.Export.OutputDir = expandHome(cfg.Export.OutputDir)
	cfg = applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg Config) Config {
	if v := strings.TrimSpace(os.Getenv(EnvSection)); v != "" {
		cfg.UI.DefaultSection = v
	}
	return cfg
}

// Validate reports every invalid setting.
func (c Config) Validate() error {
	var merr *multierror.Error
	if c.UI.DefaultSection != "" {
		if _, ok := section.Parse(c.UI.DefaultSection); !ok {
			merr = multierror.Append(merr, fmt.Errorf("ui.default_section: %w: %q", section.ErrUnknownSection, c.UI.DefaultSection))
		}
	}
	switch c.UI.RenderMode {
	case "", RenderNative, RenderMarkdown:
	default:
		merr = multierror.Append(merr, fmt.Errorf("ui.render_mode: unknown mode %q", c.UI.RenderMode))
	}
	if strings.TrimSpace(c.Export.OutputDir) == "" {
		merr = multierror.Append(merr, errors.New("export.output_dir: must not be empty"))
	}
	if _, err := export.ParseFormats(c.Export.Formats); err != nil {
		merr = multierror.Append(merr, fmt.Errorf("export.formats: %w", err))
	}
	return merr.ErrorOrNil()
}

// StartSection returns the configured default section, or section.Default
// when it is unset or unknown.
func (c Config) StartSection() section.ID {
	if id, ok := section.Parse(c.UI.DefaultSection); ok {
		return id
	}
	return section.Default
}

// SaveTo writes the config to a specific path.
func SaveTo(cfg Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
