// Package testutil provides content fixtures for tests. All generators
// produce deterministic output for reproducible tests.
package testutil

import (
	"fmt"
	"math/rand"
	"strings"

	"pgregory.net/rapid"

	"github.com/vanderheijden86/adpf/pkg/content"
	"github.com/vanderheijden86/adpf/pkg/section"
)

// GeneratorConfig controls registry generation.
type GeneratorConfig struct {
	Seed          int64 // Random seed for determinism (0 = 42)
	MaxBlocks     int   // Blocks per entry (default: 4)
	MaxDepth      int   // Subsection nesting (default: 1)
	MaxTableRows  int   // default: 5
	MaxTableCols  int   // default: 4
	AwkwardMarkup bool  // Sprinkle markdown and HTML metacharacters into text
}

// DefaultConfig returns a config suitable for most tests.
func DefaultConfig() GeneratorConfig {
	return GeneratorConfig{
		Seed:         42,
		MaxBlocks:    4,
		MaxDepth:     1,
		MaxTableRows: 5,
		MaxTableCols: 4,
	}
}

// Generator creates synthetic registries.
type Generator struct {
	cfg GeneratorConfig
	rng *rand.Rand
}

// New creates a Generator with the given config.
func New(cfg GeneratorConfig) *Generator {
	def := DefaultConfig()
	if cfg.Seed == 0 {
		cfg.Seed = def.Seed
	}
	if cfg.MaxBlocks <= 0 {
		cfg.MaxBlocks = def.MaxBlocks
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}
	if cfg.MaxTableRows <= 0 {
		cfg.MaxTableRows = def.MaxTableRows
	}
	if cfg.MaxTableCols <= 0 {
		cfg.MaxTableCols = def.MaxTableCols
	}
	return &Generator{cfg: cfg, rng: rand.New(rand.NewSource(cfg.Seed))}
}

// NewDefault creates a Generator with DefaultConfig.
func NewDefault() *Generator {
	return New(DefaultConfig())
}

var words = []string{
	"archetype", "integrity", "signal", "pattern", "lattice", "harmony",
	"core", "module", "wisdom", "structure", "balance", "insight",
}

var awkward = []string{"a|b", "*bold*", "_under_", "<tag>", "back`tick", "x\\y", "#hash", "[link](x)"}

func (g *Generator) text(n int) string {
	parts := make([]string, n)
	for i := range parts {
		if g.cfg.AwkwardMarkup && g.rng.Intn(4) == 0 {
			parts[i] = awkward[g.rng.Intn(len(awkward))]
			continue
		}
		parts[i] = words[g.rng.Intn(len(words))]
	}
	return strings.Join(parts, " ")
}

func (g *Generator) items(n int) []content.Item {
	items := make([]content.Item, n)
	for i := range items {
		items[i] = content.Item{Term: g.text(1), Text: g.text(3 + g.rng.Intn(8))}
	}
	return items
}

// Table returns a rectangular table.
func (g *Generator) Table() content.Table {
	cols := 1 + g.rng.Intn(g.cfg.MaxTableCols)
	rows := 1 + g.rng.Intn(g.cfg.MaxTableRows)
	t := content.Table{Title: g.text(2), Columns: make([]string, cols)}
	for i := range t.Columns {
		t.Columns[i] = g.text(1 + g.rng.Intn(2))
	}
	for r := 0; r < rows; r++ {
		row := make([]string, cols)
		for c := range row {
			row[c] = g.text(1 + g.rng.Intn(6))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

func (g *Generator) block(depth int) content.Block {
	kinds := 5
	if depth < g.cfg.MaxDepth {
		kinds = 6
	}
	switch g.rng.Intn(kinds) {
	case 0:
		return content.Paragraph{Text: g.text(5 + g.rng.Intn(30))}
	case 1:
		return content.Placeholder{Label: g.text(3)}
	case 2:
		return content.FeatureList{Title: g.text(2), Items: g.items(1 + g.rng.Intn(4))}
	case 3:
		cards := make([]content.Card, 1+g.rng.Intn(4))
		for i := range cards {
			cards[i] = content.Card{
				Title:       g.text(2),
				Description: g.text(6),
				Items:       g.items(g.rng.Intn(3)),
				Bulleted:    g.rng.Intn(2) == 0,
			}
		}
		return content.CardGroup{Title: g.text(2), Columns: 1 + g.rng.Intn(3), Cards: cards}
	case 4:
		return g.Table()
	default:
		return content.Subsection{Title: g.text(2), Subtitle: g.text(4), Blocks: g.blocks(depth + 1)}
	}
}

func (g *Generator) blocks(depth int) []content.Block {
	n := 1 + g.rng.Intn(g.cfg.MaxBlocks)
	out := make([]content.Block, n)
	for i := range out {
		out[i] = g.block(depth)
	}
	return out
}

// Entries returns one entry per section, in section order.
func (g *Generator) Entries() []content.Entry {
	entries := make([]content.Entry, 0, section.Count)
	for _, id := range section.All() {
		entries = append(entries, content.Entry{
			ID:       id,
			Title:    fmt.Sprintf("%s %s", id.Label(), g.text(2)),
			Subtitle: g.text(5),
			Blocks:   g.blocks(0),
		})
	}
	return entries
}

// Registry returns a complete, valid registry. It panics if the generated
// content fails validation, which would be a generator bug.
func (g *Generator) Registry() *content.Registry {
	reg, err := content.NewRegistry(Site(), g.Entries()...)
	if err != nil {
		panic(fmt.Sprintf("testutil: generated registry is invalid: %v", err))
	}
	return reg
}

// Site returns fixed page chrome for synthetic registries.
func Site() content.Site {
	return content.Site{
		Name:    "TEST",
		Title:   "Test Site",
		Tagline: "Synthetic content",
		Footer:  []string{"footer one", "footer two"},
	}
}

// MinimalRegistry returns a registry with a single paragraph per section.
func MinimalRegistry() *content.Registry {
	entries := make([]content.Entry, 0, section.Count)
	for _, id := range section.All() {
		entries = append(entries, content.Entry{
			ID:     id,
			Title:  id.Label(),
			Blocks: []content.Block{content.Paragraph{Text: "x"}},
		})
	}
	reg, err := content.NewRegistry(Site(), entries...)
	if err != nil {
		panic(err)
	}
	return reg
}

// RegistryGen is a rapid generator of valid registries.
func RegistryGen() *rapid.Generator[*content.Registry] {
	return rapid.Custom(func(t *rapid.T) *content.Registry {
		return New(GeneratorConfig{
			Seed:          rapid.Int64Range(1, 1<<40).Draw(t, "seed"),
			MaxBlocks:     rapid.IntRange(1, 6).Draw(t, "maxBlocks"),
			MaxDepth:      rapid.IntRange(0, 2).Draw(t, "maxDepth"),
			AwkwardMarkup: rapid.Bool().Draw(t, "awkward"),
		}).Registry()
	})
}
