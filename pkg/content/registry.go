package content

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"

	"github.com/vanderheijden86/adpf/pkg/section"
)

// Registry maps every section to exactly one entry. It is immutable after
// construction.
type Registry struct {
	entries [section.Count]Entry
	site    Site
}

// NewRegistry builds a registry from one entry per section. Every problem
// found is reported, not just the first.
func NewRegistry(site Site, entries ...Entry) (*Registry, error) {
	var merr *multierror.Error
	r := &Registry{site: site}
	var seen [section.Count]bool

	for i, e := range entries {
		if !e.ID.Valid() {
			merr = multierror.Append(merr, fmt.Errorf("entry %d: %w: %d", i, section.ErrUnknownSection, int(e.ID)))
			continue
		}
		if seen[e.ID] {
			merr = multierror.Append(merr, fmt.Errorf("section %s: duplicate entry", e.ID))
			continue
		}
		seen[e.ID] = true
		if strings.TrimSpace(e.Title) == "" {
			merr = multierror.Append(merr, fmt.Errorf("section %s: empty title", e.ID))
		}
		if err := ValidateBlocks(e.Blocks); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("section %s: %w", e.ID, err))
		}
		r.entries[e.ID] = e
	}
	for _, id := range section.All() {
		if !seen[id] {
			merr = multierror.Append(merr, fmt.Errorf("section %s: no entry", id))
		}
	}

	if err := merr.ErrorOrNil(); err != nil {
		return nil, err
	}
	return r, nil
}

// ValidateBlocks checks the shape invariants of tables, recursively.
func ValidateBlocks(blocks []Block) error {
	var merr *multierror.Error
	for _, b := range blocks {
		switch v := b.(type) {
		case Table:
			if len(v.Columns) == 0 {
				merr = multierror.Append(merr, fmt.Errorf("table %q: no columns", v.Title))
			}
			for i, row := range v.Rows {
				if len(row) != len(v.Columns) {
					merr = multierror.Append(merr, fmt.Errorf("table %q row %d: %d cells, want %d", v.Title, i, len(row), len(v.Columns)))
				}
			}
		case Subsection:
			if err := ValidateBlocks(v.Blocks); err != nil {
				merr = multierror.Append(merr, fmt.Errorf("subsection %q: %w", v.Title, err))
			}
		case nil:
			merr = multierror.Append(merr, fmt.Errorf("nil block"))
		}
	}
	return merr.ErrorOrNil()
}

// Lookup returns the entry for id. Every valid section has one; an
// out-of-set id yields the zero Entry.
func (r *Registry) Lookup(id section.ID) Entry {
	e, _ := r.Get(id)
	return e
}

// Get returns the entry for id and whether id is a member of the fixed set.
func (r *Registry) Get(id section.ID) (Entry, bool) {
	if !id.Valid() {
		return Entry{}, false
	}
	return r.entries[id], true
}

// LookupTag resolves a section tag. Unknown tags return false, never an error.
func (r *Registry) LookupTag(tag string) (Entry, bool) {
	id, ok := section.Parse(tag)
	if !ok {
		return Entry{}, false
	}
	return r.Get(id)
}

// Entries returns all entries in navigation order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, section.Count)
	for _, id := range section.All() {
		out = append(out, r.entries[id])
	}
	return out
}

// Site returns the page chrome shared by every section.
func (r *Registry) Site() Site {
	return r.site
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the built-in ADPF registry. It panics if the built-in
// content breaks a registry invariant.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistry(adpfSite(), adpfEntries()...)
		if err != nil {
			panic(fmt.Sprintf("content: built-in registry is invalid: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}
