// Package section defines the closed set of ADPF page sections and the
// selector that owns which one is active.
package section

import (
	"errors"
	"fmt"
	"strings"
)

// ID identifies one page section. The zero value is Home.
type ID int

const (
	Home ID = iota
	Integrity
	Diversity
	Prosperity
	Modularity
	Scale
	Mapping

	count
)

// Default is the section shown before any selection is made.
const Default = Home

// Count is the number of sections.
const Count = int(count)

// ErrUnknownSection is returned when a tag does not name a section.
var ErrUnknownSection = errors.New("unknown section")

type meta struct {
	tag   string
	label string
	icon  string
}

var sections = [count]meta{
	Home:       {tag: "home", label: "Home", icon: "⌂"},
	Integrity:  {tag: "integrity", label: "Integrity", icon: "⛨"},
	Diversity:  {tag: "diversity", label: "Diversity", icon: "✧"},
	Prosperity: {tag: "prosperity", label: "Prosperity", icon: "◍"},
	Modularity: {tag: "modularity", label: "Modularity", icon: "▤"},
	Scale:      {tag: "scale", label: "Scalability", icon: "✦"},
	Mapping:    {tag: "mapping", label: "Mapped Knowledge", icon: "❏"},
}

// All returns every section in navigation order.
func All() []ID {
	ids := make([]ID, 0, Count)
	for i := ID(0); i < count; i++ {
		ids = append(ids, i)
	}
	return ids
}

// Valid reports whether id is a member of the fixed set.
func (id ID) Valid() bool {
	return id >= 0 && id < count
}

// String returns the section tag (e.g. "integrity").
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("section(%d)", int(id))
	}
	return sections[id].tag
}

// Label returns the human-readable navigation label.
func (id ID) Label() string {
	if !id.Valid() {
		return ""
	}
	return sections[id].label
}

// AriaLabel returns the accessible description of the navigation control.
func (id ID) AriaLabel() string {
	if !id.Valid() {
		return ""
	}
	return "Navigate to " + sections[id].label
}

// Icon returns a single glyph shown next to the label.
func (id ID) Icon() string {
	if !id.Valid() {
		return ""
	}
	return sections[id].icon
}

// Parse maps a tag to its section. Matching ignores case and surrounding space.
func Parse(tag string) (ID, bool) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for i := ID(0); i < count; i++ {
		if sections[i].tag == tag {
			return i, true
		}
	}
	return 0, false
}

// MustParse is Parse for tags known at compile time.
func MustParse(tag string) ID {
	id, ok := Parse(tag)
	if !ok {
		panic(fmt.Sprintf("section: unknown tag %q", tag))
	}
	return id
}

// Tags returns every section tag in navigation order.
func Tags() []string {
	tags := make([]string, 0, Count)
	for _, id := range All() {
		tags = append(tags, id.String())
	}
	return tags
}

// MarshalText implements encoding.TextMarshaler.
func (id ID) MarshalText() ([]byte, error) {
	if !id.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSection, int(id))
	}
	return []byte(sections[id].tag), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ID) UnmarshalText(text []byte) error {
	parsed, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, string(text))
	}
	*id = parsed
	return nil
}
