package export

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/section"
	"github.com/vanderheijden86/adpf/pkg/version"
)

//go:embed templates/site.html.tmpl
var templateFS embed.FS

var siteTemplate = template.Must(template.ParseFS(templateFS, "templates/site.html.tmpl"))

var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithXHTML(),
	),
)

// htmlPage is the data passed to the site template.
type htmlPage struct {
	Site     content.Site
	Version  string
	Default  string
	Logo     template.HTML
	Sections []htmlSection
}

type htmlSection struct {
	ID        string
	Label     string
	AriaLabel string
	Icon      string
	Title     string
	Subtitle  string
	Body      template.HTML
}

// HTML renders the registry as a single self-contained page. Every section
// is a panel addressed by its tag (#home, #mapping, ...); the default section
// shows when no panel is targeted.
func HTML(site content.Site, reg *content.Registry) ([]byte, error) {
	page := htmlPage{
		Site:    site,
		Version: version.Version,
		Default: section.Default.String(),
		Logo:    template.HTML(inlineLogoSVG(64)),
	}

	for _, e := range reg.Entries() {
		body, err := renderMarkdownHTML(BodyMarkdown(e, 3), e.ID.String())
		if err != nil {
			return nil, fmt.Errorf("render section %s: %w", e.ID, err)
		}
		page.Sections = append(page.Sections, htmlSection{
			ID:        e.ID.String(),
			Label:     e.ID.Label(),
			AriaLabel: e.ID.AriaLabel(),
			Icon:      e.ID.Icon(),
			Title:     e.Title,
			Subtitle:  e.Subtitle,
			Body:      body,
		})
	}

	var buf bytes.Buffer
	if err := siteTemplate.Execute(&buf, page); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// renderMarkdownHTML converts markdown to HTML. Heading IDs are prefixed with
// prefix so they never collide with section anchors or other sections.
func renderMarkdownHTML(md, prefix string) (template.HTML, error) {
	var buf bytes.Buffer
	ctx := parser.NewContext(parser.WithIDs(newPrefixedIDs(prefix)))
	if err := mdParser.Convert([]byte(md), &buf, parser.WithContext(ctx)); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

// prefixedIDs implements parser.IDs with "<prefix>-<slug>" identifiers.
type prefixedIDs struct {
	prefix string
	seen   map[string]int
}

func newPrefixedIDs(prefix string) *prefixedIDs {
	return &prefixedIDs{prefix: prefix, seen: make(map[string]int)}
}

func (p *prefixedIDs) Generate(value []byte, kind ast.NodeKind) []byte {
	slug := createSlug(string(value))
	if slug == "" {
		slug = "heading"
	}
	id := p.prefix + "-" + slug
	if n := p.seen[id]; n > 0 {
		p.seen[id] = n + 1
		id = fmt.Sprintf("%s-%d", id, n)
	}
	p.seen[id]++
	return []byte(id)
}

func (p *prefixedIDs) Put(value []byte) {
	p.seen[string(value)]++
}
