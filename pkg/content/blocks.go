// Package content holds the immutable ADPF page registry: one entry per
// section, each made of typed blocks.
package content

import "github.com/vanderheijden86/adpf/pkg/section"

// Kind names a block type. It doubles as the discriminator in exports.
type Kind string

const (
	KindParagraph   Kind = "paragraph"
	KindPlaceholder Kind = "placeholder"
	KindFeatureList Kind = "feature_list"
	KindCardGroup   Kind = "card_group"
	KindSubsection  Kind = "subsection"
	KindTable       Kind = "table"
)

// Block is one renderable piece of an entry. The set of implementations is
// closed to this package.
type Block interface {
	Kind() Kind
	isBlock()
}

// Entry is the content shown for one section.
type Entry struct {
	ID       section.ID
	Title    string
	Subtitle string // optional
	Blocks   []Block
}

// Item is a single line inside a list or card: an optional icon, an
// optional bold term and the text.
type Item struct {
	Icon string
	Term string
	Text string
}

// Card is one tile of a card group.
type Card struct {
	Icon        string
	Title       string
	Description string
	Items       []Item
	Bulleted    bool // render items as a plain bullet list
}

// Paragraph is a block of prose.
type Paragraph struct {
	Text string
}

// Placeholder marks a slot reserved for an animation.
type Placeholder struct {
	Label string
}

// FeatureList is a titled list of explained terms.
type FeatureList struct {
	Icon  string
	Title string
	Items []Item
}

// CardGroup lays cards out side by side, up to Columns per row.
type CardGroup struct {
	Icon    string
	Title   string // optional
	Columns int
	Cards   []Card
}

// Subsection is a nested, separately titled panel inside an entry.
type Subsection struct {
	Title    string
	Subtitle string
	Blocks   []Block
}

// Table is a titled reference table. Every row has len(Columns) cells.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

func (Paragraph) Kind() Kind   { return KindParagraph }
func (Placeholder) Kind() Kind { return KindPlaceholder }
func (FeatureList) Kind() Kind { return KindFeatureList }
func (CardGroup) Kind() Kind   { return KindCardGroup }
func (Subsection) Kind() Kind  { return KindSubsection }
func (Table) Kind() Kind       { return KindTable }

func (Paragraph) isBlock()   {}
func (Placeholder) isBlock() {}
func (FeatureList) isBlock() {}
func (CardGroup) isBlock()   {}
func (Subsection) isBlock()  {}
func (Table) isBlock()       {}

// Tables returns every table in the entry, including those nested in
// subsections, in document order.
func (e Entry) Tables() []Table {
	return collectTables(e.Blocks, nil)
}

func collectTables(blocks []Block, out []Table) []Table {
	for _, b := range blocks {
		switch v := b.(type) {
		case Table:
			out = append(out, v)
		case Subsection:
			out = collectTables(v.Blocks, out)
		}
	}
	return out
}

// HasProse reports whether the entry contains at least one paragraph.
func (e Entry) HasProse() bool {
	return hasProse(e.Blocks)
}

func hasProse(blocks []Block) bool {
	for _, b := range blocks {
		switch v := b.(type) {
		case Paragraph:
			if v.Text != "" {
				return true
			}
		case Subsection:
			if hasProse(v.Blocks) {
				return true
			}
		}
	}
	return false
}

// Walk calls fn for every block in document order, descending into
// subsections. depth is 0 for top-level blocks.
func (e Entry) Walk(fn func(b Block, depth int)) {
	walk(e.Blocks, 0, fn)
}

func walk(blocks []Block, depth int, fn func(Block, int)) {
	for _, b := range blocks {
		fn(b, depth)
		if sub, ok := b.(Subsection); ok {
			walk(sub.Blocks, depth+1, fn)
		}
	}
}
