package types

import (
	"bytes"

	"golang.org/x/exp/constraints"
)

// rank orders the value variants relative to one another. Within a
// variant, values compare naturally.
func rank(v DataValue) (r int) {
	switch v.(type) {
	case Bottom:
		r = 0
	case Null:
		r = 1
	case Bool:
		r = 2
	case Int:
		r = 3
	case Float:
		r = 4
	case String:
		r = 5
	case UUID:
		r = 6
	case Bytes:
		r = 7
	case List:
		r = 8
	case EntityID:
		r = 9
	case Keyword:
		r = 10
	case Timestamp:
		r = 11
	}
	return
}

func cmpOrdered[X constraints.Ordered](a, b X) (diff int) {
	switch {
	case a < b:
		diff = -1
	case a > b:
		diff = 1
	}
	return
}

func cmpBool(a, b Bool) (diff int) {
	switch {
	case !bool(a) && bool(b):
		diff = -1
	case bool(a) && !bool(b):
		diff = 1
	}
	return
}

func cmpList(a, b List) (diff int) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		diff = Compare(a[i], b[i])
		if diff != 0 {
			return
		}
	}
	return cmpOrdered(len(a), len(b))
}

// Compare is a total three-way order over values, for the benefit of
// the index layer. When both sides are descending wrappers the inner
// order reverses; a lone wrapper is transparent. Bottom compares
// least.
func Compare(a, b DataValue) (diff int) {
	if da, ok := a.(Desc); ok {
		if db, ok := b.(Desc); ok {
			return Compare(db.V, da.V)
		}
		return Compare(da.V, b)
	}
	if db, ok := b.(Desc); ok {
		return Compare(a, db.V)
	}
	diff = cmpOrdered(rank(a), rank(b))
	if diff != 0 {
		return
	}
	switch a := a.(type) {
	case Bottom, Null:
	case Bool:
		diff = cmpBool(a, b.(Bool))
	case Int:
		diff = cmpOrdered(a, b.(Int))
	case Float:
		diff = cmpOrdered(a, b.(Float))
	case String:
		diff = cmpOrdered(a, b.(String))
	case UUID:
		bu := b.(UUID)
		diff = bytes.Compare(a[:], bu[:])
	case Bytes:
		diff = bytes.Compare(a, b.(Bytes))
	case List:
		diff = cmpList(a, b.(List))
	case EntityID:
		diff = cmpOrdered(a, b.(EntityID))
	case Keyword:
		diff = cmpOrdered(a, b.(Keyword))
	case Timestamp:
		diff = cmpOrdered(a, b.(Timestamp))
	}
	return
}
