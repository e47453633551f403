// Package types defines the core system types.
package types

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Void is used for values in maps used as sets.
type Void struct{}

// DataValue is an immutable value as the storage and serialization
// layers see it. Nil is not a valid value.
type DataValue interface {
	isDataValue()
}

// Value is the subset of DataValue a fact may carry at write time,
// before coercion against the attribute's declared type.
type Value interface {
	DataValue
	isValue()
}

// Null is the absent value. It is admitted only by nullable types.
type Null struct{}

func (Null) String() string { return "#null" }

// Bool is a boolean.
type Bool bool

func (b Bool) String() string {
	if bool(b) {
		return "#t"
	}
	return "#f"
}

// Int is a signed integer.
type Int int64

func (i Int) String() string {
	return fmt.Sprintf("#int(%d)", int64(i))
}

// Float is a floating-point number.
type Float float64

func (f Float) String() string {
	return fmt.Sprintf("#float(%v)", float64(f))
}

// String is a string.
type String string

func (s String) String() string {
	return fmt.Sprintf("#str(%q)", string(s))
}

// UUID is a universally unique identifier.
type UUID uuid.UUID

func (u UUID) String() string {
	return fmt.Sprintf("#uuid(%s)", uuid.UUID(u).String())
}

// List is an ordered sequence of values.
type List []Value

func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = fmt.Sprintf("%v", v)
	}
	return "#list[" + strings.Join(parts, ", ") + "]"
}

// Bytes is an opaque byte string. It never appears in facts before
// coercion, only in storage.
type Bytes []byte

func (b Bytes) String() string {
	return fmt.Sprintf("#bytes(%s)", hex.EncodeToString(b))
}

// Timestamp is an instant, an integral count of time units assigned
// by the transactor.
type Timestamp int64

func (ts Timestamp) String() string {
	return fmt.Sprintf("#ts(%d)", int64(ts))
}

// Desc wraps a value to reverse its position in the index order.
type Desc struct {
	V Value
}

func (d Desc) String() string {
	return fmt.Sprintf("#desc(%v)", d.V)
}

// Bottom sorts before every other value.
type Bottom struct{}

func (Bottom) String() string { return "#bottom" }

func (Null) isDataValue()      {}
func (Bool) isDataValue()      {}
func (Int) isDataValue()       {}
func (Float) isDataValue()     {}
func (String) isDataValue()    {}
func (UUID) isDataValue()      {}
func (List) isDataValue()      {}
func (Bytes) isDataValue()     {}
func (Timestamp) isDataValue() {}
func (Desc) isDataValue()      {}
func (Bottom) isDataValue()    {}

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Int) isValue()    {}
func (Float) isValue()  {}
func (String) isValue() {}
func (UUID) isValue()   {}
func (List) isValue()   {}

// Datum is the fundamental data model.
type Datum struct {
	// E is the entity id.
	E EntityID
	// A is the attribute id.
	A AttrID
	// V is the value.
	V DataValue
	// T is the transaction id.
	T TxID
}

func (d Datum) String() string {
	return fmt.Sprintf("#d[%v, %v, %v, %v]", d.E, d.A, d.V, d.T)
}

// D is a convenience function for building a datum.
func D(e EntityID, a AttrID, v DataValue, t TxID) Datum {
	return Datum{e, a, v, t}
}
