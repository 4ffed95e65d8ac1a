// Package simath forwards the floating-point functions of package math
// over quantities from package si.
//
// Functions that preserve the physical dimension (Abs, Min, rounding,
// Hypot) accept any dimension. The transcendentals only make sense on
// pure numbers and so are restricted to dimensionless prefix-zero
// quantities. Sqrt and Cbrt change the dimension: their results carry
// the si.Root and si.CubeRoot markers.
package simath

import (
	"math"

	"deedles.dev/si"
	"golang.org/x/exp/constraints"
)

// fwd applies a float64 function to a quantity's value, keeping the
// dimension.
func fwd[T constraints.Float, D si.Dim](q si.Quantity[T, D], f func(float64) float64) si.Quantity[T, D] {
	return si.Of[D](T(f(float64(q.Value()))))
}

// fwd2 is fwd for binary functions over same-dimension operands.
func fwd2[T constraints.Float, D si.Dim](x, y si.Quantity[T, D], f func(float64, float64) float64) si.Quantity[T, D] {
	return si.Of[D](T(f(float64(x.Value()), float64(y.Value()))))
}

// Abs returns the absolute value of q.
func Abs[T constraints.Float, D si.Dim](q si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd(q, math.Abs)
}

// Ceil returns the least integer value greater than or equal to q.
func Ceil[T constraints.Float, D si.Dim](q si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd(q, math.Ceil)
}

// Floor returns the greatest integer value less than or equal to q.
func Floor[T constraints.Float, D si.Dim](q si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd(q, math.Floor)
}

// Trunc returns the integer value of q.
func Trunc[T constraints.Float, D si.Dim](q si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd(q, math.Trunc)
}

// Round returns the nearest integer to q, rounding half away from
// zero.
func Round[T constraints.Float, D si.Dim](q si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd(q, math.Round)
}

// Min returns the smaller of x and y.
func Min[T constraints.Float, D si.Dim](x, y si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd2(x, y, math.Min)
}

// Max returns the larger of x and y.
func Max[T constraints.Float, D si.Dim](x, y si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd2(x, y, math.Max)
}

// Dim returns the maximum of x - y and zero.
func Dim[T constraints.Float, D si.Dim](x, y si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd2(x, y, math.Dim)
}

// Hypot returns the Euclidean norm of x and y, in their shared
// dimension.
func Hypot[T constraints.Float, D si.Dim](x, y si.Quantity[T, D]) si.Quantity[T, D] {
	return fwd2(x, y, math.Hypot)
}

// Exp returns e raised to a dimensionless quantity.
func Exp[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Exp)
}

// Exp2 returns 2 raised to a dimensionless quantity.
func Exp2[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Exp2)
}

// Log returns the natural logarithm of a dimensionless quantity.
func Log[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Log)
}

// Log2 returns the base-2 logarithm of a dimensionless quantity.
func Log2[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Log2)
}

// Log10 returns the base-10 logarithm of a dimensionless quantity.
func Log10[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Log10)
}

// Sin returns the sine of a dimensionless quantity.
func Sin[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Sin)
}

// Cos returns the cosine of a dimensionless quantity.
func Cos[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Cos)
}

// Tan returns the tangent of a dimensionless quantity.
func Tan[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Tan)
}

// Asin returns the arcsine of a dimensionless quantity.
func Asin[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Asin)
}

// Acos returns the arccosine of a dimensionless quantity.
func Acos[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Acos)
}

// Atan returns the arctangent of a dimensionless quantity.
func Atan[T constraints.Float](q si.Quantity[T, si.ScalarDim]) si.Quantity[T, si.ScalarDim] {
	return fwd(q, math.Atan)
}

// Atan2 returns the angle of the vector (x, y). The operands must
// share a dimension, which cancels, so the result is a pure number.
func Atan2[T constraints.Float, D si.Dim](y, x si.Quantity[T, D]) si.Quantity[T, si.ScalarDim] {
	return si.Of[si.ScalarDim](T(math.Atan2(float64(y.Value()), float64(x.Value()))))
}

// FMA returns x*y + z without intermediate rounding of x*y. The third
// operand must already have the product's dimension.
func FMA[T constraints.Float, A, B si.Dim](x si.Quantity[T, A], y si.Quantity[T, B], z si.Quantity[T, si.Prod[A, B]]) si.Quantity[T, si.Prod[A, B]] {
	return si.Of[si.Prod[A, B]](T(math.FMA(float64(x.Value()), float64(y.Value()), float64(z.Value()))))
}

// Sqrt returns the square root of q. Every exponent of the dimension
// is halved; if q's prefix is odd the result type cannot exist and
// the call panics.
func Sqrt[T constraints.Float, D si.Dim](q si.Quantity[T, D]) si.Quantity[T, si.Root[D]] {
	r := si.Of[si.Root[D]](T(math.Sqrt(float64(q.Value()))))
	r.Dim() // rejects an odd prefix up front
	return r
}

// Cbrt returns the cube root of q, with every exponent of the
// dimension divided by three.
func Cbrt[T constraints.Float, D si.Dim](q si.Quantity[T, D]) si.Quantity[T, si.CubeRoot[D]] {
	r := si.Of[si.CubeRoot[D]](T(math.Cbrt(float64(q.Value()))))
	r.Dim() // rejects a prefix not divisible by three
	return r
}
