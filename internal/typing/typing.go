// Package typing defines the closed algebra of declared attribute
// types, its canonical text form, and the coercion of runtime values
// against declared types.
package typing

import "strings"

// Typing is a declared type: a scalar or one of the container forms,
// each container owning its nested types outright. The algebra is
// closed and acyclic. Every Typing has exactly one canonical text
// form, and Parse inverts String.
type Typing interface {
	String() string
	isTyping()
}

// Scalar is a non-container declared type.
type Scalar uint8

const (
	// Any admits every value, including null.
	Any Scalar = iota
	// Bool admits booleans.
	Bool
	// Int admits signed integers, and no other numbers.
	Int
	// Float admits floating-point numbers, and no other numbers.
	Float
	// Text admits strings.
	Text
	// Uuid admits universally unique identifiers.
	Uuid
)

var scalarNames = [...]string{"Any", "Bool", "Int", "Float", "Text", "Uuid"}

func (s Scalar) String() string {
	return scalarNames[s]
}

// Nullable admits null in addition to the values of its element type.
type Nullable struct {
	Elem Typing
}

func (t Nullable) String() string {
	return "?" + t.Elem.String()
}

// Homogeneous is a list type whose elements share one type.
type Homogeneous struct {
	Elem Typing
}

func (t Homogeneous) String() string {
	return "[" + t.Elem.String() + "]"
}

// UnnamedTuple is a positional tuple type.
type UnnamedTuple struct {
	Fields []Typing
}

func (t UnnamedTuple) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = f.String()
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// NamedField is one entry of a NamedTuple.
type NamedField struct {
	Name string
	Type Typing
}

// NamedTuple is a keyed tuple type. Fields are in declaration order.
type NamedTuple struct {
	Fields []NamedField
}

func (t NamedTuple) String() string {
	parts := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		parts[i] = `"` + f.Name + `":` + f.Type.String()
	}
	return "{" + strings.Join(parts, ",") + "}"
}

func (Scalar) isTyping()       {}
func (Nullable) isTyping()     {}
func (Homogeneous) isTyping()  {}
func (UnnamedTuple) isTyping() {}
func (NamedTuple) isTyping()   {}
