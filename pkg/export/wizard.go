package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/vanderheijden86/adpf/pkg/content"
)

// ErrWizardCancelled is returned when the user declines the final confirm.
var ErrWizardCancelled = errors.New("export cancelled")

// WizardConfig holds the answers collected by the wizard.
type WizardConfig struct {
	OutputDir string
	Formats   []string
	Confirmed bool
}

// Options converts the answers into bundle options for reg.
func (c WizardConfig) Options(reg *content.Registry) (Options, error) {
	formats, err := ParseFormats(c.Formats)
	if err != nil {
		return Options{}, err
	}
	if len(formats) == 0 {
		return Options{}, fmt.Errorf("no export formats selected")
	}
	dir := strings.TrimSpace(c.OutputDir)
	if dir == "" {
		return Options{}, fmt.Errorf("output directory is required")
	}
	return Options{OutputDir: dir, Formats: formats, Registry: reg}, nil
}

// Wizard handles the interactive export flow.
type Wizard struct {
	config *WizardConfig
	out    io.Writer
}

// NewWizard creates a wizard pre-filled with the given defaults.
func NewWizard(outputDir string, formats []string) *Wizard {
	return &Wizard{
		config: &WizardConfig{
			OutputDir: outputDir,
			Formats:   append([]string(nil), formats...),
			Confirmed: true,
		},
		out: os.Stdout,
	}
}

// isTerminal checks if stdin is connected to a terminal
func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// newForm creates a form with appropriate settings based on TTY detection
func newForm(groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
	if !isTerminal() {
		form = form.WithAccessible(true)
	}
	return form
}

// formatOptions lists every format, pre-selecting those in selected.
func formatOptions(selected []string) []huh.Option[string] {
	want := make(map[Format]bool)
	if parsed, err := ParseFormats(selected); err == nil {
		for _, f := range parsed {
			want[f] = true
		}
	}
	opts := make([]huh.Option[string], 0, len(AllFormats()))
	for _, f := range AllFormats() {
		label := fmt.Sprintf("%-8s → %s", f, f.FileName())
		opts = append(opts, huh.NewOption(label, string(f)).Selected(want[f]))
	}
	return opts
}

func validateOutputDir(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("output directory is required")
	}
	return nil
}

// Run executes the interactive wizard flow.
func (w *Wizard) Run() (*WizardConfig, error) {
	fmt.Fprintln(w.out, "")
	fmt.Fprintln(w.out, "ADPF static export")
	fmt.Fprintln(w.out, "──────────────────")

	form := newForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Formats").
				Description("Space to toggle, enter to continue").
				Options(formatOptions(w.config.Formats)...).
				Validate(func(v []string) error {
					if len(v) == 0 {
						return fmt.Errorf("select at least one format")
					}
					return nil
				}).
				Value(&w.config.Formats),
			huh.NewInput().
				Title("Output directory").
				Value(&w.config.OutputDir).
				Placeholder("site").
				Validate(validateOutputDir),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write the export now?").
				Affirmative("Export").
				Negative("Cancel").
				Value(&w.config.Confirmed),
		),
	)

	if err := form.Run(); err != nil {
		return nil, err
	}
	if !w.config.Confirmed {
		return nil, ErrWizardCancelled
	}
	fmt.Fprintln(w.out, "")
	return w.config, nil
}

// GetConfig returns the collected wizard configuration.
func (w *Wizard) GetConfig() *WizardConfig {
	return w.config
}
