// Package index defines the sort orders the storage engine keeps
// datums in.
package index

import (
	. "github.com/dball/constructive/internal/types"
)

// Lesser reports whether d1 sorts strictly before d2.
type Lesser func(d1 Datum, d2 Datum) bool

func LessEAV(d1 Datum, d2 Datum) bool { return EAV(d1, d2) < 0 }
func LessAEV(d1 Datum, d2 Datum) bool { return AEV(d1, d2) < 0 }
func LessAVE(d1 Datum, d2 Datum) bool { return AVE(d1, d2) < 0 }
func LessVAE(d1 Datum, d2 Datum) bool { return VAE(d1, d2) < 0 }

// Comparer is a three-way datum order.
type Comparer func(d1 Datum, d2 Datum) int

func E(d1 Datum, d2 Datum) (diff int) {
	switch {
	case d1.E < d2.E:
		diff = -1
	case d1.E > d2.E:
		diff = 1
	}
	return
}

func A(d1 Datum, d2 Datum) (diff int) {
	switch {
	case d1.A < d2.A:
		diff = -1
	case d1.A > d2.A:
		diff = 1
	}
	return
}

func V(d1 Datum, d2 Datum) int {
	return Compare(d1.V, d2.V)
}

func EA(d1 Datum, d2 Datum) (diff int) {
	diff = E(d1, d2)
	if diff == 0 {
		diff = A(d1, d2)
	}
	return
}

func EAV(d1 Datum, d2 Datum) (diff int) {
	diff = EA(d1, d2)
	if diff == 0 {
		diff = V(d1, d2)
	}
	return
}

func AE(d1 Datum, d2 Datum) (diff int) {
	diff = A(d1, d2)
	if diff == 0 {
		diff = E(d1, d2)
	}
	return
}

func AEV(d1 Datum, d2 Datum) (diff int) {
	diff = AE(d1, d2)
	if diff == 0 {
		diff = V(d1, d2)
	}
	return
}

func AV(d1 Datum, d2 Datum) (diff int) {
	diff = A(d1, d2)
	if diff == 0 {
		diff = V(d1, d2)
	}
	return
}

func AVE(d1 Datum, d2 Datum) (diff int) {
	diff = AV(d1, d2)
	if diff == 0 {
		diff = E(d1, d2)
	}
	return
}

func VA(d1 Datum, d2 Datum) (diff int) {
	diff = V(d1, d2)
	if diff == 0 {
		diff = A(d1, d2)
	}
	return
}

func VAE(d1 Datum, d2 Datum) (diff int) {
	diff = VA(d1, d2)
	if diff == 0 {
		diff = E(d1, d2)
	}
	return
}
