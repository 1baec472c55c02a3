package ast

import "fmt"

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

func (p Position) String() string {
	return fmt.Sprintf("line %d, col %d", p.Line, p.Column)
}

// Option is a single key/value pair from an option block,
// e.g. the `bgcolor: "#eee"` inside `[person] {bgcolor: "#eee"}`.
type Option struct {
	Key   string
	Value string
	Pos   Position
}

// OptionSet is an ordered list of options as they appeared in source.
// Source order is preserved so warnings about unrecognized keys are stable;
// lookups are last-wins, matching how duplicate keys behave in the markup.
type OptionSet []Option

// Get returns the value for key and true if present.
// When a key appears more than once the last occurrence wins.
func (s OptionSet) Get(key string) (string, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i].Key == key {
			return s[i].Value, true
		}
	}
	return "", false
}

// Cardinality is one of the four relationship cardinality tokens.
type Cardinality int

const (
	ZeroOne  Cardinality = iota // ?
	One                         // 1
	ZeroPlus                    // *
	OnePlus                     // +
)

// Symbol returns the markup symbol for the cardinality.
func (c Cardinality) Symbol() string {
	switch c {
	case ZeroOne:
		return "?"
	case One:
		return "1"
	case ZeroPlus:
		return "*"
	case OnePlus:
		return "+"
	}
	return "?"
}

func (c Cardinality) String() string {
	switch c {
	case ZeroOne:
		return "zero-or-one"
	case One:
		return "exactly-one"
	case ZeroPlus:
		return "zero-or-many"
	case OnePlus:
		return "one-or-many"
	}
	return fmt.Sprintf("Cardinality(%d)", int(c))
}

// Attribute is a named field of an entity.
type Attribute struct {
	Name    string
	Type    string // optional free-form type label, "" when absent
	IsKey   bool   // leading '*' marker
	IsFK    bool   // leading '+' marker
	Options OptionSet
	Pos     Position
}

// Entity is a named table-like structure with ordered attributes.
type Entity struct {
	Name    string
	Attrs   []*Attribute
	Options OptionSet
	Pos     Position
}

// Relation connects two entities with a cardinality on each side.
// Left and Right are entity names; they are resolved against declared
// entities by Validate, not by the parser.
type Relation struct {
	Left      string
	Right     string
	LeftCard  Cardinality
	RightCard Cardinality
	Options   OptionSet
	Pos       Position
}

// Document is the parsed representation of one markup input.
// Entities and relations preserve declaration order, which determines
// DOT emission order. Directive fields hold the document-level option
// blocks (`title {...}`, `header {...}`, and so on).
type Document struct {
	Title        OptionSet
	Header       OptionSet
	Entity       OptionSet
	Relationship OptionSet

	Entities  []*Entity
	Relations []*Relation
}

// EntityByName returns the declared entity with the given name, or nil.
// Names are case-sensitive.
func (d *Document) EntityByName(name string) *Entity {
	for _, e := range d.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}
