package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/vanderheijden86/adpf/pkg/content"
)

const (
	cardGap     = 2
	minColWidth = 6
)

// RenderEntry renders an entry with native lipgloss components.
func RenderEntry(e content.Entry, t Theme, width int) string {
	width = clampWidth(width)

	head := t.Title.Render(strings.Join(wrapText(e.Title, width), "\n"))
	if e.Subtitle != "" {
		head += "\n" + t.Subtitle.Render(strings.Join(wrapText(e.Subtitle, width), "\n"))
	}
	return joinRows(append([]string{head}, renderBlocks(e.Blocks, t, width)...))
}

func renderBlocks(blocks []content.Block, t Theme, width int) []string {
	out := make([]string, 0, len(blocks))
	for _, b := range blocks {
		switch v := b.(type) {
		case content.Paragraph:
			out = append(out, t.Base.Render(strings.Join(wrapText(v.Text, width), "\n")))
		case content.Placeholder:
			out = append(out, t.Placeholder.Width(width-2).Render("[ Animated GIF: "+v.Label+" ]"))
		case content.FeatureList:
			out = append(out, renderFeatureList(v, t, width))
		case content.CardGroup:
			out = append(out, renderCardGroup(v, t, width))
		case content.Subsection:
			out = append(out, renderSubsection(v, t, width))
		case content.Table:
			out = append(out, renderTable(v, t, width))
		}
	}
	return out
}

func blockHeading(icon, title string, t Theme, width int) string {
	if icon != "" {
		title = icon + " " + title
	}
	return t.BlockTitle.Render(strings.Join(wrapText(title, width), "\n"))
}

func renderItem(it content.Item, t Theme, width int, bullet string) string {
	prefix := bullet
	if it.Icon != "" {
		prefix += it.Icon + " "
	}
	if it.Term != "" {
		prefix += t.Term.Render(it.Term+":") + " "
	}
	return hangingIndent(prefix, it.Text, width)
}

func renderFeatureList(f content.FeatureList, t Theme, width int) string {
	lines := []string{blockHeading(f.Icon, f.Title, t, width)}
	for _, it := range f.Items {
		lines = append(lines, renderItem(it, t, width, "  "))
	}
	return strings.Join(lines, "\n")
}

// cardLayout returns how many cards fit side by side and the outer width
// of each.
func cardLayout(columns, width int) (cols, cardWidth int) {
	cols = columns
	if cols < 1 {
		cols = 1
	}
	for {
		cardWidth = (width - (cols-1)*cardGap) / cols
		if cols == 1 || cardWidth >= minCardWidth {
			return cols, cardWidth
		}
		cols--
	}
}

func renderCardGroup(g content.CardGroup, t Theme, width int) string {
	var parts []string
	if g.Title != "" {
		parts = append(parts, blockHeading(g.Icon, g.Title, t, width))
	}
	_, cardWidth := cardLayout(g.Columns, width)
	boxes := make([]string, 0, len(g.Cards))
	for _, c := range g.Cards {
		boxes = append(boxes, renderCard(c, t, cardWidth))
	}
	parts = append(parts, wrapBoxes(boxes, width, cardGap))
	return strings.Join(parts, "\n")
}

func renderCard(c content.Card, t Theme, outer int) string {
	// Border and horizontal padding take two cells each.
	inner := outer - 4
	if inner < 8 {
		inner = 8
	}

	title := c.Title
	if c.Icon != "" {
		title = c.Icon + " " + title
	}
	lines := []string{t.BlockTitle.Render(strings.Join(wrapText(title, inner), "\n"))}
	if c.Description != "" {
		lines = append(lines, t.Subtitle.Render(strings.Join(wrapText(c.Description, inner), "\n")))
	}
	for _, it := range c.Items {
		if c.Bulleted {
			lines = append(lines, hangingIndent("• ", it.Text, inner))
			continue
		}
		lines = append(lines, renderItem(it, t, inner, ""))
	}
	return t.Card.Width(outer - 2).Render(strings.Join(lines, "\n"))
}

func renderSubsection(s content.Subsection, t Theme, width int) string {
	inner := width - 1 - SpaceSM
	head := t.Title.Render(strings.Join(wrapText(s.Title, inner), "\n"))
	if s.Subtitle != "" {
		head += "\n" + t.Subtitle.Render(strings.Join(wrapText(s.Subtitle, inner), "\n"))
	}
	body := joinRows(append([]string{head}, renderBlocks(s.Blocks, t, inner)...))
	return t.Panel.Render(body)
}

// columnWidths fits the table's natural column widths into avail cells,
// shrinking proportionally when they do not fit.
func columnWidths(tbl content.Table, avail int) []int {
	n := len(tbl.Columns)
	natural := make([]int, n)
	for i, c := range tbl.Columns {
		natural[i] = runewidth.StringWidth(c)
	}
	for _, row := range tbl.Rows {
		for i := 0; i < n && i < len(row); i++ {
			if w := runewidth.StringWidth(row[i]); w > natural[i] {
				natural[i] = w
			}
		}
	}

	total := 0
	for _, w := range natural {
		total += w
	}
	if total <= avail || total == 0 {
		return natural
	}

	widths := make([]int, n)
	remaining := avail
	for i, w := range natural {
		widths[i] = w * avail / total
		if widths[i] < minColWidth {
			widths[i] = minColWidth
		}
		remaining -= widths[i]
	}
	for i := 0; remaining > 0; i = (i + 1) % n {
		widths[i]++
		remaining--
	}
	// Minimum widths may overshoot; take the excess from the widest columns,
	// going below the minimum only in very narrow layouts.
	for remaining < 0 {
		widest := 0
		for i, w := range widths {
			if w > widths[widest] {
				widest = i
			}
		}
		if widths[widest] <= 1 {
			break
		}
		widths[widest]--
		remaining++
	}
	return widths
}

func renderTable(tbl content.Table, t Theme, width int) string {
	n := len(tbl.Columns)
	if n == 0 {
		return blockHeading("", tbl.Title, t, width)
	}
	// One border per column plus the closing one, and a space either side
	// of every cell.
	widths := columnWidths(tbl, width-(n+1)-2*n)

	border := func(left, mid, right string) string {
		segs := make([]string, n)
		for i, w := range widths {
			segs[i] = strings.Repeat("─", w+2)
		}
		return t.TableBorder.Render(left + strings.Join(segs, mid) + right)
	}
	bar := t.TableBorder.Render("│")

	renderRow := func(cells []string, head bool) []string {
		wrapped := make([][]string, n)
		height := 1
		for i := 0; i < n; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			wrapped[i] = wrapText(cell, widths[i])
			if len(wrapped[i]) > height {
				height = len(wrapped[i])
			}
		}
		lines := make([]string, height)
		for l := 0; l < height; l++ {
			var sb strings.Builder
			sb.WriteString(bar)
			for i := 0; i < n; i++ {
				text := ""
				if l < len(wrapped[i]) {
					text = wrapped[i][l]
				}
				text = padRight(text, widths[i])
				if head {
					text = t.TableHead.Render(text)
				}
				sb.WriteString(" " + text + " ")
				sb.WriteString(bar)
			}
			lines[l] = sb.String()
		}
		return lines
	}

	lines := []string{blockHeading("", tbl.Title, t, width), border("┌", "┬", "┐")}
	lines = append(lines, renderRow(tbl.Columns, true)...)
	lines = append(lines, border("├", "┼", "┤"))
	for _, row := range tbl.Rows {
		lines = append(lines, renderRow(row, false)...)
	}
	lines = append(lines, border("└", "┴", "┘"))
	return strings.Join(lines, "\n")
}
