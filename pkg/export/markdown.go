package export

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"unicode"

	"github.com/vanderheijden86/adpf/pkg/content"
)

// Package-level compiled regex for slug creation (avoids recompilation per call)
var slugNonAlphanumericRegex = regexp.MustCompile(`[^a-z0-9]+`)

var (
	textEscaper = strings.NewReplacer(
		`\`, `\\`,
		"*", `\*`,
		"_", `\_`,
		"`", "\\`",
		"<", `\<`,
	)
	cellEscaper = strings.NewReplacer(
		`\`, `\\`,
		"|", `\|`,
		"*", `\*`,
		"_", `\_`,
		"`", "\\`",
		"<", `\<`,
		"\n", " ",
	)
)

// Markdown renders the whole site as one GitHub-flavored markdown document:
// the site title, a section index, then every entry in navigation order.
func Markdown(site content.Site, reg *content.Registry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# %s\n\n", escapeText(site.Title)))
	if site.Tagline != "" {
		sb.WriteString(fmt.Sprintf("*%s*\n\n", escapeText(site.Tagline)))
	}

	entries := reg.Entries()
	sb.WriteString("## Sections\n\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("- %s [%s](#%s)\n", e.ID.Icon(), e.ID.Label(), githubAnchor(e.Title)))
	}
	sb.WriteString("\n")

	for _, e := range entries {
		sb.WriteString("---\n\n")
		sb.WriteString(SectionMarkdown(e))
	}

	if len(site.Footer) > 0 {
		sb.WriteString("---\n\n")
		for _, line := range site.Footer {
			sb.WriteString(escapeText(line))
			sb.WriteString("  \n")
		}
	}

	return sb.String()
}

// SectionMarkdown renders one entry, starting with its title as a level-2
// heading.
func SectionMarkdown(e content.Entry) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("## %s\n\n", escapeText(e.Title)))
	if e.Subtitle != "" {
		sb.WriteString(fmt.Sprintf("*%s*\n\n", escapeText(e.Subtitle)))
	}
	writeBlocks(&sb, e.Blocks, 3)
	return sb.String()
}

// BodyMarkdown renders only the blocks of an entry, with block headings at
// level. The HTML export uses it below its own section header.
func BodyMarkdown(e content.Entry, level int) string {
	var sb strings.Builder
	writeBlocks(&sb, e.Blocks, level)
	return sb.String()
}

func writeBlocks(sb *strings.Builder, blocks []content.Block, level int) {
	for _, b := range blocks {
		switch v := b.(type) {
		case content.Paragraph:
			sb.WriteString(escapeText(v.Text))
			sb.WriteString("\n\n")

		case content.Placeholder:
			sb.WriteString(fmt.Sprintf("> 🎬 *%s*\n\n", escapeText(v.Label)))

		case content.FeatureList:
			writeHeading(sb, level, v.Icon, v.Title)
			for _, it := range v.Items {
				sb.WriteString("- ")
				sb.WriteString(itemMarkdown(it))
				sb.WriteString("\n")
			}
			sb.WriteString("\n")

		case content.CardGroup:
			cardLevel := level
			if v.Title != "" {
				writeHeading(sb, level, v.Icon, v.Title)
				cardLevel++
			}
			for _, c := range v.Cards {
				writeCard(sb, c, cardLevel)
			}

		case content.Subsection:
			writeHeading(sb, level, "", v.Title)
			if v.Subtitle != "" {
				sb.WriteString(fmt.Sprintf("*%s*\n\n", escapeText(v.Subtitle)))
			}
			writeBlocks(sb, v.Blocks, level+1)

		case content.Table:
			writeHeading(sb, level, "", v.Title)
			writeTable(sb, v)
		}
	}
}

func writeCard(sb *strings.Builder, c content.Card, level int) {
	writeHeading(sb, level, c.Icon, c.Title)
	if c.Description != "" {
		sb.WriteString(escapeText(c.Description))
		sb.WriteString("\n\n")
	}
	if len(c.Items) == 0 {
		return
	}
	for _, it := range c.Items {
		sb.WriteString("- ")
		if c.Bulleted {
			it.Icon = ""
		}
		sb.WriteString(itemMarkdown(it))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func writeTable(sb *strings.Builder, t content.Table) {
	if len(t.Columns) == 0 {
		return
	}
	sb.WriteString("|")
	for _, col := range t.Columns {
		sb.WriteString(" " + escapeCell(col) + " |")
	}
	sb.WriteString("\n|")
	for range t.Columns {
		sb.WriteString("---|")
	}
	sb.WriteString("\n")
	for _, row := range t.Rows {
		sb.WriteString("|")
		for i := range t.Columns {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			sb.WriteString(" " + escapeCell(cell) + " |")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
}

func writeHeading(sb *strings.Builder, level int, icon, title string) {
	if title == "" {
		return
	}
	if level > 6 {
		level = 6
	}
	sb.WriteString(strings.Repeat("#", level))
	sb.WriteString(" ")
	if icon != "" {
		sb.WriteString(icon + " ")
	}
	sb.WriteString(escapeText(title))
	sb.WriteString("\n\n")
}

func itemMarkdown(it content.Item) string {
	var parts []string
	if it.Icon != "" {
		parts = append(parts, it.Icon)
	}
	if it.Term != "" {
		parts = append(parts, fmt.Sprintf("**%s:**", escapeText(it.Term)))
	}
	if it.Text != "" {
		parts = append(parts, escapeText(it.Text))
	}
	return strings.Join(parts, " ")
}

func escapeText(s string) string { return textEscaper.Replace(s) }

func escapeCell(s string) string { return cellEscaper.Replace(s) }

// githubAnchor returns the anchor GitHub assigns to a heading.
func githubAnchor(text string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_':
			sb.WriteRune(r)
		case r == ' ':
			sb.WriteRune('-')
		}
	}
	return sb.String()
}

// createSlug creates a URL-friendly slug from text.
func createSlug(text string) string {
	slug := strings.ToLower(text)
	slug = slugNonAlphanumericRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

// SaveMarkdownToFile writes the full site markdown to filename.
func SaveMarkdownToFile(site content.Site, reg *content.Registry, filename string) error {
	md := Markdown(site, reg)
	if err := os.WriteFile(filename, []byte(md), 0o644); err != nil {
		return fmt.Errorf("write markdown: %w", err)
	}
	return nil
}
