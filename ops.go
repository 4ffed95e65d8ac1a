package si

import "fmt"

// Mul returns the product of two quantities. The result dimension is
// the product of the operand dimensions: exponents added, prefixes
// added.
func Mul[T Value, A, B Dim](x Quantity[T, A], y Quantity[T, B]) Quantity[T, Prod[A, B]] {
	return Quantity[T, Prod[A, B]]{val: x.val * y.val}
}

// Div returns the quotient of two quantities. The result dimension is
// the quotient of the operand dimensions: exponents subtracted,
// prefixes subtracted. Division by zero follows the storage type's
// semantics.
func Div[T Value, A, B Dim](x Quantity[T, A], y Quantity[T, B]) Quantity[T, Quot[A, B]] {
	return Quantity[T, Quot[A, B]]{val: x.val / y.val}
}

// Scale returns q scaled by a bare numeric value. The dimension and
// prefix are unchanged; s may be of any numeric type and is converted
// to the storage type.
func Scale[S, T Value, D Dim](q Quantity[T, D], s S) Quantity[T, D] {
	return Quantity[T, D]{val: q.val * T(s)}
}

// Unscale returns q divided by a bare numeric value, with the
// dimension and prefix unchanged.
func Unscale[S, T Value, D Dim](q Quantity[T, D], s S) Quantity[T, D] {
	return Quantity[T, D]{val: q.val / T(s)}
}

// Per divides a bare numeric value by a quantity. The scalar is lifted
// to the scalar type associated with q, so the ordinary division rule
// applies and the result carries the inverse dimension at prefix zero.
func Per[S, T Value, D Dim](s S, q Quantity[T, D]) Quantity[T, Quot[ScalarOf[D], D]] {
	return Div(Quantity[T, ScalarOf[D]]{val: T(s)}, q)
}

// Rescale is the explicit conversion between two quantity types that
// agree on all seven exponents but differ in prefix. The value is
// adjusted by repeated multiplication or division by ten, one prefix
// step at a time, so no unit-less intermediate is introduced. For
// integer storage the downward direction truncates, which is why the
// conversion is never implicit.
//
// Rescale panics if the two types differ in any exponent.
func Rescale[D2 Dim, T Value, D1 Dim](q Quantity[T, D1]) Quantity[T, D2] {
	from, to := vectorOf[D1](), vectorOf[D2]()
	if !from.SameExponents(to) {
		panic(fmt.Sprintf("si: rescale between different dimensions: %q != %q", from, to))
	}
	v := q.val
	for p := from.Pref(); p > to.Pref(); p-- {
		v *= 10
	}
	for p := from.Pref(); p < to.Pref(); p++ {
		v /= 10
	}
	return Quantity[T, D2]{val: v}
}

// As converts between two spellings of the same dimension, for example
// Prod[MeterDim, SecondDim] and Prod[SecondDim, MeterDim], which Go
// treats as distinct types. The value is unchanged. As panics if the
// dimension vectors, prefix included, are not equal.
func As[D2 Dim, T Value, D1 Dim](q Quantity[T, D1]) Quantity[T, D2] {
	from, to := vectorOf[D1](), vectorOf[D2]()
	if from != to {
		panic(fmt.Sprintf("si: conversion between different dimensions: %q != %q", from, to))
	}
	return Quantity[T, D2]{val: q.val}
}
