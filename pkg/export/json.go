package export

import (
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/vanderheijden86/adpf/pkg/content"
)

// SchemaVersion is bumped whenever the JSON or SQLite layout changes.
const SchemaVersion = 1

// SiteDocument is the JSON form of the whole registry.
type SiteDocument struct {
	SchemaVersion int               `json:"schema_version"`
	Site          SiteJSON          `json:"site"`
	Sections      []SectionDocument `json:"sections"`
}

// SiteJSON is the page chrome.
type SiteJSON struct {
	Name    string   `json:"name"`
	Title   string   `json:"title"`
	Tagline string   `json:"tagline,omitempty"`
	Footer  []string `json:"footer,omitempty"`
}

// SectionDocument is one navigation entry with its content.
type SectionDocument struct {
	ID        string      `json:"id"`
	Label     string      `json:"label"`
	AriaLabel string      `json:"aria_label"`
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle,omitempty"`
	Blocks    []BlockJSON `json:"blocks"`
}

// BlockJSON is a block tagged with its kind. Only the fields of that kind
// are set.
type BlockJSON struct {
	Kind          content.Kind `json:"kind"`
	Text          string       `json:"text,omitempty"`
	Label         string       `json:"label,omitempty"`
	Icon          string       `json:"icon,omitempty"`
	Title         string       `json:"title,omitempty"`
	Subtitle      string       `json:"subtitle,omitempty"`
	LayoutColumns int          `json:"layout_columns,omitempty"`
	Items         []ItemJSON   `json:"items,omitempty"`
	Cards         []CardJSON   `json:"cards,omitempty"`
	Blocks        []BlockJSON  `json:"blocks,omitempty"`
	Columns       []string     `json:"columns,omitempty"`
	Rows          [][]string   `json:"rows,omitempty"`
}

// ItemJSON is one list line.
type ItemJSON struct {
	Icon string `json:"icon,omitempty"`
	Term string `json:"term,omitempty"`
	Text string `json:"text"`
}

// CardJSON is one card of a card group.
type CardJSON struct {
	Icon        string     `json:"icon,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Bulleted    bool       `json:"bulleted,omitempty"`
	Items       []ItemJSON `json:"items,omitempty"`
}

// NewSiteDocument converts the registry into its JSON form.
func NewSiteDocument(site content.Site, reg *content.Registry) SiteDocument {
	doc := SiteDocument{
		SchemaVersion: SchemaVersion,
		Site: SiteJSON{
			Name:    site.Name,
			Title:   site.Title,
			Tagline: site.Tagline,
			Footer:  site.Footer,
		},
	}
	for _, e := range reg.Entries() {
		doc.Sections = append(doc.Sections, SectionDocument{
			ID:        e.ID.String(),
			Label:     e.ID.Label(),
			AriaLabel: e.ID.AriaLabel(),
			Title:     e.Title,
			Subtitle:  e.Subtitle,
			Blocks:    blocksJSON(e.Blocks),
		})
	}
	return doc
}

// JSON encodes the registry as indented JSON.
func JSON(site content.Site, reg *content.Registry) ([]byte, error) {
	data, err := json.MarshalIndent(NewSiteDocument(site, reg), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal site: %w", err)
	}
	return append(data, '\n'), nil
}

func blocksJSON(blocks []content.Block) []BlockJSON {
	out := make([]BlockJSON, 0, len(blocks))
	for _, b := range blocks {
		bj := BlockJSON{Kind: b.Kind()}
		switch v := b.(type) {
		case content.Paragraph:
			bj.Text = v.Text
		case content.Placeholder:
			bj.Label = v.Label
		case content.FeatureList:
			bj.Icon = v.Icon
			bj.Title = v.Title
			bj.Items = itemsJSON(v.Items)
		case content.CardGroup:
			bj.Icon = v.Icon
			bj.Title = v.Title
			bj.LayoutColumns = v.Columns
			for _, c := range v.Cards {
				bj.Cards = append(bj.Cards, CardJSON{
					Icon:        c.Icon,
					Title:       c.Title,
					Description: c.Description,
					Bulleted:    c.Bulleted,
					Items:       itemsJSON(c.Items),
				})
			}
		case content.Subsection:
			bj.Title = v.Title
			bj.Subtitle = v.Subtitle
			bj.Blocks = blocksJSON(v.Blocks)
		case content.Table:
			bj.Title = v.Title
			bj.Columns = v.Columns
			bj.Rows = v.Rows
		}
		out = append(out, bj)
	}
	return out
}

func itemsJSON(items []content.Item) []ItemJSON {
	if len(items) == 0 {
		return nil
	}
	out := make([]ItemJSON, len(items))
	for i, it := range items {
		out[i] = ItemJSON{Icon: it.Icon, Term: it.Term, Text: it.Text}
	}
	return out
}
