// Package schema contains the public schema and typing operations for
// constructive.
package schema

import (
	"github.com/dball/constructive/internal/codec"
	"github.com/dball/constructive/internal/typing"
)

// CanonicalType parses a type expression and returns its canonical
// text form.
func CanonicalType(expr string) (string, error) {
	t, err := typing.Parse(expr)
	if err != nil {
		return "", err
	}
	return t.String(), nil
}

// CoerceJSON validates a JSON value against a declared type,
// returning the coerced value as JSON.
func CoerceJSON(typeExpr string, data []byte) ([]byte, error) {
	t, err := typing.Parse(typeExpr)
	if err != nil {
		return nil, err
	}
	v, err := codec.DecodeValue(data)
	if err != nil {
		return nil, err
	}
	coerced, err := typing.Coerce(t, v)
	if err != nil {
		return nil, err
	}
	return codec.EncodeValue(coerced)
}

// ValidateAttribute validates a JSON attribute definition, returning
// the normalized definition with every field populated.
func ValidateAttribute(data []byte) ([]byte, error) {
	attr, err := codec.DecodeAttribute(data)
	if err != nil {
		return nil, err
	}
	return codec.EncodeAttribute(attr)
}
