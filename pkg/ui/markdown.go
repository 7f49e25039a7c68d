package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"
)

// MarkdownRenderer renders markdown with glamour, using a style that
// matches the terminal background.
type MarkdownRenderer struct {
	tr    *glamour.TermRenderer
	width int
	style string
}

// NewMarkdownRendererWithTheme creates a renderer wrapping at width.
func NewMarkdownRendererWithTheme(width int, theme Theme) *MarkdownRenderer {
	style := styles.DarkStyle
	if theme.Renderer != nil && !theme.Renderer.HasDarkBackground() {
		style = styles.LightStyle
	}
	r := &MarkdownRenderer{style: style}
	r.SetWidth(width)
	return r
}

// SetWidth rebuilds the underlying renderer when the wrap width changes.
func (r *MarkdownRenderer) SetWidth(width int) {
	if width < minContentWidth {
		width = minContentWidth
	}
	if r.tr != nil && width == r.width {
		return
	}
	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		r.tr = nil
		return
	}
	r.tr = tr
	r.width = width
}

// Render converts md to styled terminal output. Without a working renderer
// the markdown is returned as is.
func (r *MarkdownRenderer) Render(md string) (string, error) {
	if r == nil || r.tr == nil {
		return md, nil
	}
	out, err := r.tr.Render(md)
	if err != nil {
		return md, err
	}
	return compressBlankLines(strings.TrimSpace(out)), nil
}

// compressBlankLines collapses runs of 3+ blank lines into 2; glamour
// sometimes adds excessive whitespace.
func compressBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := lines[:0]
	blank := 0
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			blank++
			if blank > 2 {
				continue
			}
		} else {
			blank = 0
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
