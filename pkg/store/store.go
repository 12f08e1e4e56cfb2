// Package store holds the typed working-storage variables of a running
// program. Writes to declared slots are coerced to the slot's picture
// specification; undeclared identifiers get untyped slots on first write
// and read back as integer zero until then.
package store

import (
	"strconv"
	"strings"

	"cobolt/pkg/picture"
)

// Value is implemented by every working-storage value kind.
type Value interface {
	// Display returns the value's textual form as emitted by DISPLAY.
	Display() string
	value()
}

// Int is an integer value.
type Int struct {
	Value int
}

func (Int) value() {}

func (i Int) Display() string { return strconv.Itoa(i.Value) }

// Text is a character value. Declared slots keep it at exactly the
// picture width, left-justified and space-padded.
type Text struct {
	Value string
}

func (Text) value() {}

func (t Text) Display() string { return t.Value }

// Store maps uppercased identifiers to typed slots.
type Store struct {
	vars  map[string]Value
	specs map[string]picture.Spec
}

func New() *Store {
	return &Store{
		vars:  make(map[string]Value),
		specs: make(map[string]picture.Spec),
	}
}

// Declare registers a picture specification and initializes the slot:
// zero for numeric slots, spaces at the declared width for text slots.
func (s *Store) Declare(name string, spec picture.Spec) {
	key := strings.ToUpper(name)
	s.specs[key] = spec
	if spec.Numeric {
		s.vars[key] = Int{}
		return
	}
	s.vars[key] = Text{Value: strings.Repeat(" ", spec.Length)}
}

// Spec returns the picture specification registered for name.
func (s *Store) Spec(name string) (picture.Spec, bool) {
	spec, ok := s.specs[strings.ToUpper(name)]
	return spec, ok
}

// Has reports whether name currently holds a value.
func (s *Store) Has(name string) bool {
	_, ok := s.vars[strings.ToUpper(name)]
	return ok
}

// Get returns the current value, defaulting to integer zero for
// identifiers that were never written.
func (s *Store) Get(name string) Value {
	if v, ok := s.vars[strings.ToUpper(name)]; ok {
		return v
	}
	return Int{}
}

// Set writes v, coercing it to the slot's picture specification when one
// is registered. Numeric coercion parses the textual form, storing zero
// on failure; text coercion truncates or space-pads to the declared
// width. Unregistered identifiers store v verbatim.
func (s *Store) Set(name string, v Value) {
	key := strings.ToUpper(name)
	spec, ok := s.specs[key]
	if !ok {
		s.vars[key] = v
		return
	}
	if spec.Numeric {
		n, err := strconv.Atoi(strings.TrimSpace(v.Display()))
		if err != nil {
			n = 0
		}
		s.vars[key] = Int{Value: n}
		return
	}
	s.vars[key] = Text{Value: fit(v.Display(), spec.Length)}
}

// Lookup returns the identifier's numeric form: integers directly, other
// values through integer parsing with a zero fallback. It satisfies
// expr.Resolver.
func (s *Store) Lookup(name string) int {
	switch v := s.Get(name).(type) {
	case Int:
		return v.Value
	default:
		n, err := strconv.Atoi(strings.TrimSpace(v.Display()))
		if err != nil {
			return 0
		}
		return n
	}
}

// fit forces text to the declared width. Width zero means the clause
// carried no usable symbols; the text is kept as-is.
func fit(text string, width int) string {
	if width <= 0 {
		return text
	}
	if len(text) > width {
		return text[:width]
	}
	return text + strings.Repeat(" ", width-len(text))
}
