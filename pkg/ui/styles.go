package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing and layout limits
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
	SpaceLG = 4
)

// Layout limits
const (
	minContentWidth = 30
	maxContentWidth = 110
	minCardWidth    = 26
	defaultWidth    = 80
	defaultHeight   = 24
)

// RenderDivider renders a horizontal divider line
func RenderDivider(width int, t Theme) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().Foreground(t.Border).Render(strings.Repeat("─", width))
}

// clampWidth limits the readable content width.
func clampWidth(w int) int {
	if w > maxContentWidth {
		return maxContentWidth
	}
	if w < minContentWidth {
		return minContentWidth
	}
	return w
}

// joinRows stacks blocks vertically with one blank line between them.
func joinRows(parts []string) string {
	var kept []string
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n\n")
}

// wrapBoxes lays rendered boxes out left to right, starting a new row when
// the next box would exceed width.
func wrapBoxes(boxes []string, width, gap int) string {
	var rows []string
	var row []string
	rowWidth := 0
	spacer := strings.Repeat(" ", gap)
	for _, b := range boxes {
		w := lipgloss.Width(b)
		if len(row) > 0 && rowWidth+gap+w > width {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row, rowWidth = nil, 0
		}
		if len(row) > 0 {
			row = append(row, spacer)
			rowWidth += gap
		}
		row = append(row, b)
		rowWidth += w
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return strings.Join(rows, "\n")
}
