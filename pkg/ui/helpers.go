package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// truncateRunesHelper truncates a string to max visual width (cells), adding suffix if needed.
// Uses go-runewidth to handle wide characters correctly.
func truncateRunesHelper(s string, maxWidth int, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}

	width := runewidth.StringWidth(s)
	if width <= maxWidth {
		return s
	}

	suffixWidth := runewidth.StringWidth(suffix)
	if suffixWidth > maxWidth {
		// Even suffix is too wide, truncate suffix
		return runewidth.Truncate(suffix, maxWidth, "")
	}

	targetWidth := maxWidth - suffixWidth
	return runewidth.Truncate(s, targetWidth, "") + suffix
}

// truncate truncates string s to maxWidth cells
func truncate(s string, maxWidth int) string {
	return truncateRunesHelper(s, maxWidth, "…")
}

// padRight pads string s with spaces on the right to width cells
func padRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// wrapText wraps text to fit within maxWidth cells. Words wider than
// maxWidth are hard-split.
func wrapText(s string, maxWidth int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return []string{""}
	}
	if maxWidth <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var currentLine strings.Builder
	currentLen := 0

	for _, word := range words {
		wordLen := runewidth.StringWidth(word)
		for wordLen > maxWidth {
			if currentLen > 0 {
				lines = append(lines, currentLine.String())
				currentLine.Reset()
				currentLen = 0
			}
			head := runewidth.Truncate(word, maxWidth, "")
			if head == "" {
				break
			}
			lines = append(lines, head)
			word = word[len(head):]
			wordLen = runewidth.StringWidth(word)
		}
		if wordLen == 0 {
			continue
		}
		if currentLen+wordLen+1 > maxWidth && currentLen > 0 {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
			currentLen = 0
		}
		if currentLen > 0 {
			currentLine.WriteString(" ")
			currentLen++
		}
		currentLine.WriteString(word)
		currentLen += wordLen
	}
	if currentLen > 0 {
		lines = append(lines, currentLine.String())
	}

	return lines
}

// hangingIndent wraps text so the first line starts with prefix and later
// lines are indented to align under the text. prefix may be styled.
func hangingIndent(prefix, text string, width int) string {
	indent := lipgloss.Width(prefix)
	lines := wrapText(text, width-indent)
	pad := strings.Repeat(" ", indent)
	for i := range lines {
		if i == 0 {
			lines[i] = prefix + lines[i]
			continue
		}
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
