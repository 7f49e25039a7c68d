package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"

	"github.com/vanderheijden86/adpf/pkg/content"
)

// AssertContainsAll fails for every want missing from got.
func AssertContainsAll(t testing.TB, got string, wants ...string) {
	t.Helper()
	for _, w := range wants {
		if !strings.Contains(got, w) {
			t.Errorf("expected output to contain %q", w)
		}
	}
}

// AssertCount fails unless sub occurs exactly n times in got.
func AssertCount(t testing.TB, got, sub string, n int) {
	t.Helper()
	if c := strings.Count(got, sub); c != n {
		t.Errorf("expected %d occurrences of %q, got %d", n, sub, c)
	}
}

// AssertJSONEqual compares two JSON documents structurally.
func AssertJSONEqual(t testing.TB, expected, actual []byte) {
	t.Helper()

	var want, got any
	if err := json.Unmarshal(expected, &want); err != nil {
		t.Fatalf("failed to unmarshal expected: %v", err)
	}
	if err := json.Unmarshal(actual, &got); err != nil {
		t.Fatalf("failed to unmarshal actual: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

// CountTables returns the number of tables across all entries of reg.
func CountTables(reg *content.Registry) int {
	n := 0
	for _, e := range reg.Entries() {
		n += len(e.Tables())
	}
	return n
}

// CountBlocks returns the number of blocks across all entries of reg,
// nested ones included.
func CountBlocks(reg *content.Registry) int {
	n := 0
	for _, e := range reg.Entries() {
		e.Walk(func(content.Block, int) { n++ })
	}
	return n
}

// TempOutputDir returns a fresh directory for export output.
func TempOutputDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "site")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create output dir: %v", err)
	}
	return dir
}
