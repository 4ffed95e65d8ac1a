// Package si provides statically checked physical quantities in the
// seven SI base dimensions.
//
// A quantity is a plain numeric value whose type also carries a
// dimension: seven rational exponents, one per SI base dimension, plus
// an integer decimal prefix. The dimension lives entirely in the type,
// so mixing incompatible quantities is a compile-time error and the
// runtime representation is exactly the underlying number:
//
//	dist := si.Meters(5)
//	dur := si.Seconds(20)
//	speed := si.Div(dist, dur) // m s^-1
//	dist.Add(dur)              // does not compile
//
// Multiplication and division combine dimensions in the result type;
// addition, subtraction, and the comparisons require both operands to
// have the same one. Prefixes are part of the type as well: adding
// meters to kilometers requires an explicit Rescale first, since for
// integer storage the conversion can truncate.
//
// Dimensions are spelled as marker types composed with Prod and Quot.
// Go's type identity is syntactic, so two different spellings of the
// same dimension, such as Prod[MeterDim, SecondDim] and
// Prod[SecondDim, MeterDim], are distinct types even though they
// describe the same physical dimension; the explicit conversion As
// bridges them.
package si

import (
	"deedles.dev/si/dim"
	"golang.org/x/exp/constraints"
)

// Value is a constraint for the numeric storage types a quantity can
// hold.
type Value interface {
	constraints.Integer | constraints.Float
}

// Dim is implemented by dimension markers: zero-size types whose
// Vector method reports the rational exponents and decimal prefix
// they denote. The dimension of a quantity type is recovered from the
// marker's zero value, never from per-instance state.
type Dim interface {
	Vector() dim.Vector
}

// vectorOf returns the dimension vector of the marker type D.
func vectorOf[D Dim]() dim.Vector {
	var d D
	return d.Vector()
}
