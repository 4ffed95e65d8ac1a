package si

import (
	"fmt"

	"deedles.dev/si/dim"
)

// Quantity is a numeric value of storage type T tagged with the
// dimension marker D. The only per-instance datum is the value itself;
// the dimension and prefix are properties of the type. The zero value
// is the zero of T.
//
// Quantities are plain values: copy freely, compare and combine via
// the methods and the package-level functions. There is no implicit
// conversion to or from T and none between distinct dimensions.
type Quantity[T Value, D Dim] struct {
	val T
}

// Of constructs a quantity of dimension D holding v. It is the
// explicit conversion from the storage type:
//
//	torque := si.Of[si.EnergyDim](3.5)
func Of[D Dim, T Value](v T) Quantity[T, D] {
	return Quantity[T, D]{val: v}
}

// Value is the explicit conversion back to the storage type. It
// returns the stored value unchanged, in units of 10^p times the base
// unit product of the dimension.
func (q Quantity[T, D]) Value() T { return q.val }

// Dim returns the dimension vector of the quantity's type.
func (q Quantity[T, D]) Dim() dim.Vector { return vectorOf[D]() }

// Unit returns the human-readable unit string of the quantity's type,
// e.g. "m kg s^-2" for newtons or "* 10^3 m" for kilometers. The
// string is a pure function of the type and is memoised.
func (q Quantity[T, D]) Unit() string { return vectorOf[D]().String() }

// String renders the value followed by its unit.
func (q Quantity[T, D]) String() string {
	u := q.Unit()
	if u == "" {
		return fmt.Sprint(q.val)
	}
	return fmt.Sprintf("%v %s", q.val, u)
}

// Add returns q + r. Both operands must have the same dimension,
// prefix, and storage type; anything else fails to compile.
func (q Quantity[T, D]) Add(r Quantity[T, D]) Quantity[T, D] {
	return Quantity[T, D]{val: q.val + r.val}
}

// Sub returns q - r, under the same typing rule as Add.
func (q Quantity[T, D]) Sub(r Quantity[T, D]) Quantity[T, D] {
	return Quantity[T, D]{val: q.val - r.val}
}

// Neg returns the negation of q.
func (q Quantity[T, D]) Neg() Quantity[T, D] {
	return Quantity[T, D]{val: -q.val}
}

// AddAssign adds r into q.
func (q *Quantity[T, D]) AddAssign(r Quantity[T, D]) { q.val += r.val }

// SubAssign subtracts r from q.
func (q *Quantity[T, D]) SubAssign(r Quantity[T, D]) { q.val -= r.val }

// ScaleAssign multiplies q by a bare scalar in place.
func (q *Quantity[T, D]) ScaleAssign(s T) { q.val *= s }

// UnscaleAssign divides q by a bare scalar in place.
func (q *Quantity[T, D]) UnscaleAssign(s T) { q.val /= s }

// MulAssign multiplies q by a dimensionless quantity in place. Only
// the prefix-zero scalar qualifies: for any other right operand the
// product would have a different type than q.
func (q *Quantity[T, D]) MulAssign(r Quantity[T, ScalarDim]) { q.val *= r.val }

// DivAssign divides q by a dimensionless quantity in place.
func (q *Quantity[T, D]) DivAssign(r Quantity[T, ScalarDim]) { q.val /= r.val }

// Equal reports whether q and r hold equal values. Like the other
// comparisons it is only defined between identical quantity types.
func (q Quantity[T, D]) Equal(r Quantity[T, D]) bool { return q.val == r.val }

// NotEqual is the negation of Equal.
func (q Quantity[T, D]) NotEqual(r Quantity[T, D]) bool { return !q.Equal(r) }

// Less reports whether q's value is less than r's.
func (q Quantity[T, D]) Less(r Quantity[T, D]) bool { return q.val < r.val }

// LessEqual reports q < r or q == r.
func (q Quantity[T, D]) LessEqual(r Quantity[T, D]) bool {
	return q.Less(r) || q.Equal(r)
}

// Greater reports r < q.
func (q Quantity[T, D]) Greater(r Quantity[T, D]) bool { return r.Less(q) }

// GreaterEqual reports q > r or q == r.
func (q Quantity[T, D]) GreaterEqual(r Quantity[T, D]) bool {
	return q.Greater(r) || q.Equal(r)
}
