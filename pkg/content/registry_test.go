package content

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"pgregory.net/rapid"

	"github.com/vanderheijden86/adpf/pkg/section"
)

func minimalEntries() []Entry {
	entries := make([]Entry, 0, section.Count)
	for _, id := range section.All() {
		entries = append(entries, Entry{ID: id, Title: id.Label(), Blocks: []Block{Paragraph{Text: "x"}}})
	}
	return entries
}

func TestDefaultRegistryIsTotal(t *testing.T) {
	reg := Default()
	for _, id := range section.All() {
		e, ok := reg.Get(id)
		if !ok {
			t.Fatalf("no entry for %s", id)
		}
		if e.ID != id {
			t.Errorf("entry for %s declares id %s", id, e.ID)
		}
		if e.Title == "" {
			t.Errorf("entry for %s has empty title", id)
		}
	}
}

func TestSelectThenLookupProperty(t *testing.T) {
	reg := Default()
	rapid.Check(t, func(t *rapid.T) {
		id := rapid.SampledFrom(section.All()).Draw(t, "id")
		sel := section.NewSelector(section.Default)
		sel.Select(id)
		e := reg.Lookup(sel.Active())
		if e.ID != id {
			t.Fatalf("lookup after select(%s) returned %s", id, e.ID)
		}
	})
}

func TestDefaultSectionLookup(t *testing.T) {
	sel := section.NewSelector(section.Default)
	e := Default().Lookup(sel.Active())
	if e.Title != "Universal Intelligence Infrastructure" {
		t.Errorf("unexpected home title %q", e.Title)
	}
}

func TestLookupTagUnknownIsAbsent(t *testing.T) {
	e, ok := Default().LookupTag("roadmap")
	if ok {
		t.Fatalf("expected absent result, got %+v", e)
	}
	if diff := cmp.Diff(Entry{}, e); diff != "" {
		t.Errorf("expected zero entry (-want +got):\n%s", diff)
	}
	if got := Default().Lookup(section.ID(77)); got.Title != "" {
		t.Errorf("expected zero entry for out-of-set id, got %q", got.Title)
	}
}

func TestAllTablesRectangular(t *testing.T) {
	for _, e := range Default().Entries() {
		for _, tbl := range e.Tables() {
			for i, row := range tbl.Rows {
				if len(row) != len(tbl.Columns) {
					t.Errorf("%s / %s row %d: %d cells, want %d", e.ID, tbl.Title, i, len(row), len(tbl.Columns))
				}
			}
		}
	}
}

func TestIntegrityHasProseNoTables(t *testing.T) {
	e := Default().Lookup(section.Integrity)
	if !e.HasProse() {
		t.Error("expected integrity to have prose")
	}
	if n := len(e.Tables()); n != 0 {
		t.Errorf("expected no tables in integrity, got %d", n)
	}
}

func TestMappingTables(t *testing.T) {
	tables := Default().Lookup(section.Mapping).Tables()
	if len(tables) != 7 {
		t.Fatalf("expected 7 knowledge tables, got %d", len(tables))
	}
	for _, tbl := range tables {
		if diff := cmp.Diff([]string{"System", "Core Structure", "Archetypal Focus"}, tbl.Columns); diff != "" {
			t.Errorf("%s columns (-want +got):\n%s", tbl.Title, diff)
		}
	}
	if last := tables[6]; len(last.Rows) != 7 {
		t.Errorf("expected 7 rows in %q, got %d", last.Title, len(last.Rows))
	}
}

func TestOnlyMappingHasTables(t *testing.T) {
	for _, e := range Default().Entries() {
		if e.ID == section.Mapping {
			continue
		}
		if len(e.Tables()) != 0 {
			t.Errorf("section %s unexpectedly has tables", e.ID)
		}
	}
}

func TestModularitySubsection(t *testing.T) {
	e := Default().Lookup(section.Modularity)
	var subs []string
	e.Walk(func(b Block, depth int) {
		if s, ok := b.(Subsection); ok {
			subs = append(subs, s.Title)
			if depth != 0 {
				t.Errorf("expected top-level subsection, got depth %d", depth)
			}
		}
	})
	if diff := cmp.Diff([]string{"Advanced Framework Extensions"}, subs); diff != "" {
		t.Errorf("subsections (-want +got):\n%s", diff)
	}
}

func TestNewRegistryRejectsGapsAndDuplicates(t *testing.T) {
	entries := minimalEntries()
	// Drop mapping, duplicate home.
	entries = entries[:len(entries)-1]
	entries = append(entries, Entry{ID: section.Home, Title: "again"})
	entries = append(entries, Entry{ID: section.ID(50), Title: "bogus"})

	_, err := NewRegistry(Site{}, entries...)
	if err == nil {
		t.Fatal("expected error")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) {
		t.Fatalf("expected multierror, got %T", err)
	}
	if len(merr.Errors) != 3 {
		t.Errorf("expected 3 problems, got %d: %v", len(merr.Errors), err)
	}
	if !errors.Is(err, section.ErrUnknownSection) {
		t.Error("expected out-of-set entry to wrap ErrUnknownSection")
	}
	if !strings.Contains(err.Error(), "mapping: no entry") {
		t.Errorf("expected gap to be reported, got %v", err)
	}
}

func TestNewRegistryRejectsRaggedTables(t *testing.T) {
	entries := minimalEntries()
	entries[section.Mapping].Blocks = []Block{
		Table{Title: "ok", Columns: []string{"a", "b"}, Rows: [][]string{{"1", "2"}}},
		Subsection{Title: "nested", Blocks: []Block{
			Table{Title: "bad", Columns: []string{"a", "b"}, Rows: [][]string{{"1"}, {"1", "2", "3"}}},
		}},
	}
	_, err := NewRegistry(Site{}, entries...)
	if err == nil {
		t.Fatal("expected ragged table error")
	}
	for _, want := range []string{`table "bad" row 0`, `table "bad" row 1`} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected %q in %v", want, err)
		}
	}
}

func TestNewRegistryEmptyTitle(t *testing.T) {
	entries := minimalEntries()
	entries[section.Scale].Title = "  "
	if _, err := NewRegistry(Site{}, entries...); err == nil || !strings.Contains(err.Error(), "empty title") {
		t.Errorf("expected empty title error, got %v", err)
	}
}

func TestEntriesOrder(t *testing.T) {
	var got []section.ID
	for _, e := range Default().Entries() {
		got = append(got, e.ID)
	}
	if diff := cmp.Diff(section.All(), got); diff != "" {
		t.Errorf("entry order (-want +got):\n%s", diff)
	}
}

func TestSite(t *testing.T) {
	site := Default().Site()
	if !strings.HasPrefix(site.Title, "ADPF") {
		t.Errorf("unexpected site title %q", site.Title)
	}
	if len(site.Footer) != 2 {
		t.Errorf("expected 2 footer lines, got %d", len(site.Footer))
	}
}
