// Package export writes the ADPF registry out as static files: markdown,
// a single-page HTML site, JSON, a SQLite database and logo images.
package export

import (
	"errors"
	"fmt"
	"strings"
)

// Format is one export output type.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatJSON     Format = "json"
	FormatSQLite   Format = "sqlite"
	FormatSVG      Format = "svg"
	FormatPNG      Format = "png"
)

// ErrUnknownFormat is returned for format names ParseFormats does not know.
var ErrUnknownFormat = errors.New("unknown export format")

// AllFormats lists every format in the order Bundle writes them.
func AllFormats() []Format {
	return []Format{FormatMarkdown, FormatHTML, FormatJSON, FormatSQLite, FormatSVG, FormatPNG}
}

// FileName returns the file a format is written to inside the output dir.
func (f Format) FileName() string {
	switch f {
	case FormatMarkdown:
		return "index.md"
	case FormatHTML:
		return "index.html"
	case FormatJSON:
		return "adpf.json"
	case FormatSQLite:
		return "adpf.sqlite3"
	case FormatSVG:
		return "logo.svg"
	case FormatPNG:
		return "logo.png"
	default:
		return ""
	}
}

var formatAliases = map[string]Format{
	"md":      FormatMarkdown,
	"htm":     FormatHTML,
	"db":      FormatSQLite,
	"sqlite3": FormatSQLite,
}

// ParseFormats parses format names, accepting comma-separated values and a
// few aliases ("md", "db"). "all" selects every format. Duplicates are
// dropped; order follows AllFormats.
func ParseFormats(names []string) ([]Format, error) {
	want := make(map[Format]bool)
	for _, raw := range names {
		for _, name := range strings.Split(raw, ",") {
			name = strings.ToLower(strings.TrimSpace(name))
			if name == "" {
				continue
			}
			if name == "all" {
				for _, f := range AllFormats() {
					want[f] = true
				}
				continue
			}
			if f, ok := formatAliases[name]; ok {
				want[f] = true
				continue
			}
			f := Format(name)
			if f.FileName() == "" {
				return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
			}
			want[f] = true
		}
	}

	var out []Format
	for _, f := range AllFormats() {
		if want[f] {
			out = append(out, f)
		}
	}
	return out, nil
}
