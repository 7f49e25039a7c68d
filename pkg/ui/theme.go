package ui

import (
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/charmbracelet/lipgloss"
)

// TermProfile holds the detected terminal color profile. Computed once at
// package init so every style helper can branch without re-detecting.
var TermProfile colorprofile.Profile

func init() {
	TermProfile = colorprofile.Detect(os.Stdout, os.Environ())
}

// ThemeBg returns the given hex color for TrueColor terminals and
// lipgloss.NoColor{} otherwise, so 16/256-color terminals use the
// terminal's own background instead of a down-converted approximation
// that may clash with palettes like Solarized.
func ThemeBg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.TrueColor {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(hex)
}

// ThemeFg returns the given hex color for ANSI256+ terminals and a safe
// ANSI white (color 7) for 16-color or lower terminals.
func ThemeFg(hex string) lipgloss.TerminalColor {
	if TermProfile < colorprofile.ANSI256 {
		return lipgloss.ANSIColor(7)
	}
	return lipgloss.Color(hex)
}

type Theme struct {
	Renderer *lipgloss.Renderer

	// Colors
	Primary   lipgloss.AdaptiveColor // indigo: titles, active nav
	Accent    lipgloss.AdaptiveColor // cyan: block headings, logo core
	Secondary lipgloss.AdaptiveColor
	Subtext   lipgloss.AdaptiveColor

	// UI Elements
	Border    lipgloss.AdaptiveColor
	Highlight lipgloss.AdaptiveColor
	Muted     lipgloss.AdaptiveColor
	Error     lipgloss.AdaptiveColor

	// Styles
	Base      lipgloss.Style
	Header    lipgloss.Style
	NavItem   lipgloss.Style
	NavActive lipgloss.Style

	// Pre-computed content styles, created once instead of per frame
	Title       lipgloss.Style // Entry title
	Subtitle    lipgloss.Style // Entry and subsection subtitles
	BlockTitle  lipgloss.Style // Feature list, card group, table titles
	Term        lipgloss.Style // Bold term in list items
	MutedText   lipgloss.Style
	Placeholder lipgloss.Style
	Card        lipgloss.Style
	Panel       lipgloss.Style // Subsection frame
	TableHead   lipgloss.Style
	TableBorder lipgloss.Style
	StatusOK    lipgloss.Style
	StatusError lipgloss.Style
}

// DefaultTheme returns the indigo-on-slate theme (adaptive)
func DefaultTheme(r *lipgloss.Renderer) Theme {
	t := Theme{
		Renderer: r,

		Primary:   lipgloss.AdaptiveColor{Light: "#4338CA", Dark: "#818CF8"}, // Indigo
		Accent:    lipgloss.AdaptiveColor{Light: "#0E7490", Dark: "#22D3EE"}, // Cyan
		Secondary: lipgloss.AdaptiveColor{Light: "#555555", Dark: "#A5B4FC"},
		Subtext:   lipgloss.AdaptiveColor{Light: "#475569", Dark: "#94A3B8"}, // Slate

		Border:    lipgloss.AdaptiveColor{Light: "#AAAAAA", Dark: "#475569"},
		Highlight: lipgloss.AdaptiveColor{Light: "#E0E7FF", Dark: "#312E81"},
		Muted:     lipgloss.AdaptiveColor{Light: "#555555", Dark: "#64748B"},
		Error:     lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF5555"},
	}

	t.Base = r.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0F172A", Dark: "#E2E8F0"})

	t.Header = r.NewStyle().
		Foreground(t.Primary).
		Bold(true)

	t.NavItem = r.NewStyle().
		Foreground(t.Secondary).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	t.NavActive = t.NavItem.
		Foreground(ThemeFg("#FFFFFF")).
		Background(ThemeBg("#312E81")).
		BorderForeground(t.Primary).
		Bold(true)

	t.Title = r.NewStyle().Foreground(t.Primary).Bold(true)
	t.Subtitle = r.NewStyle().Foreground(t.Subtext).Italic(true)
	t.BlockTitle = r.NewStyle().Foreground(t.Accent).Bold(true)
	t.Term = r.NewStyle().Foreground(t.Secondary).Bold(true)
	t.MutedText = r.NewStyle().Foreground(t.Muted)
	t.Placeholder = r.NewStyle().
		Foreground(t.Muted).
		Italic(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Align(lipgloss.Center).
		Padding(1, 2)
	t.Card = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)
	t.Panel = r.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(t.Accent).
		PaddingLeft(SpaceSM)
	t.TableHead = r.NewStyle().Foreground(t.Secondary).Bold(true)
	t.TableBorder = r.NewStyle().Foreground(t.Border)
	t.StatusOK = r.NewStyle().Foreground(t.Accent)
	t.StatusError = r.NewStyle().Foreground(t.Error).Bold(true)

	return t
}

// TestTheme returns a theme suitable for use in tests.
func TestTheme() Theme {
	return DefaultTheme(lipgloss.NewRenderer(os.Stdout))
}
