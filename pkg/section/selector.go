package section

import "fmt"

// ChangeFunc observes a change of the active section.
type ChangeFunc func(from, to ID)

// Selector owns the active section. It is not safe for concurrent use; the
// UI update loop is its only writer.
type Selector struct {
	active    ID
	observers []ChangeFunc
}

// NewSelector returns a selector starting at initial, or at Default when
// initial is not a valid section.
func NewSelector(initial ID) *Selector {
	if !initial.Valid() {
		initial = Default
	}
	return &Selector{active: initial}
}

// Active returns the currently selected section.
func (s *Selector) Active() ID {
	return s.active
}

// Select makes id the active section. Out-of-set values are ignored.
func (s *Selector) Select(id ID) {
	if !id.Valid() {
		return
	}
	from := s.active
	s.active = id
	if from == id {
		return
	}
	for _, fn := range s.observers {
		fn(from, id)
	}
}

// SelectTag selects the section named by tag. Unknown tags leave the state
// unchanged and return ErrUnknownSection.
func (s *Selector) SelectTag(tag string) error {
	id, ok := Parse(tag)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSection, tag)
	}
	s.Select(id)
	return nil
}

// Next selects the following section, wrapping after the last one.
func (s *Selector) Next() {
	s.Select((s.active + 1) % count)
}

// Prev selects the preceding section, wrapping before the first one.
func (s *Selector) Prev() {
	s.Select((s.active + count - 1) % count)
}

// OnChange registers fn to run after every change of the active section.
func (s *Selector) OnChange(fn ChangeFunc) {
	if fn == nil {
		return
	}
	s.observers = append(s.observers, fn)
}
