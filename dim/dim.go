// Package dim implements the rational dimension algebra that underlies
// package si: reduced rational exponents, the seven-component SI
// dimension vector with a decimal prefix, and the unit-string renderer.
package dim

import (
	"fmt"
	"strconv"
)

// Ratio is a rational number in canonical reduced form: the
// denominator is strictly positive, the sign lives on the numerator,
// and gcd(|num|, den) is 1. The denominator is stored minus one so
// that the zero value of Ratio is the canonical zero, 0/1.
type Ratio struct {
	num         int64
	denMinusOne int64
}

// R returns the reduced form of n/d. It panics if d is zero.
func R(n, d int64) Ratio {
	if d == 0 {
		panic("dim: zero denominator")
	}
	if d < 0 {
		n, d = -n, -d
	}
	g := gcd(abs(n), d)
	return Ratio{num: n / g, denMinusOne: d/g - 1}
}

// Num returns the numerator.
func (r Ratio) Num() int64 { return r.num }

// Den returns the denominator. It is always positive.
func (r Ratio) Den() int64 { return r.denMinusOne + 1 }

// IsZero reports whether r is zero.
func (r Ratio) IsZero() bool { return r.num == 0 }

// IsInt reports whether r has denominator one.
func (r Ratio) IsInt() bool { return r.denMinusOne == 0 }

// Add returns the reduced sum r + o.
func (r Ratio) Add(o Ratio) Ratio {
	return R(r.num*o.Den()+o.num*r.Den(), r.Den()*o.Den())
}

// Sub returns the reduced difference r - o.
func (r Ratio) Sub(o Ratio) Ratio {
	return R(r.num*o.Den()-o.num*r.Den(), r.Den()*o.Den())
}

// Neg returns -r.
func (r Ratio) Neg() Ratio {
	return Ratio{num: -r.num, denMinusOne: r.denMinusOne}
}

// Scaled returns the reduced form of r * 1/n. It is used to take roots
// of exponents.
func (r Ratio) Scaled(n int64) Ratio {
	return R(r.num, r.Den()*n)
}

// String renders r as "n" when the denominator is one and "n/d"
// otherwise.
func (r Ratio) String() string {
	if r.IsInt() {
		return strconv.FormatInt(r.num, 10)
	}
	return strconv.FormatInt(r.num, 10) + "/" + strconv.FormatInt(r.Den(), 10)
}

// reduced reports whether the raw pair (n, d) is already in canonical
// form.
func reduced(n, d int64) bool {
	if d <= 0 {
		return false
	}
	if n == 0 {
		return d == 1
	}
	return gcd(abs(n), d) == 1
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// Dimension identifies one of the seven SI base dimensions, in the
// conventional order.
type Dimension int

const (
	Meter Dimension = iota
	Second
	Kilogram
	Ampere
	Kelvin
	Mole
	Candela

	numDimensions
)

var symbols = [numDimensions]string{"m", "s", "kg", "A", "K", "mol", "cd"}

// Diagnostic names differ from the symbols: they spell the dimension
// out, with Kelvin capitalised, matching the messages users see when a
// raw exponent pair is rejected.
var names = [numDimensions]string{
	"meter", "second", "kilogram", "ampere", "Kelvin", "mole", "candela",
}

// String returns the SI symbol for the dimension.
func (d Dimension) String() string { return symbols[d] }

// Name returns the spelled-out name used in diagnostics.
func (d Dimension) Name() string { return names[d] }

// Vector is a set of rational exponents, one per SI base dimension,
// together with an integer decimal prefix: a value v tagged with
// Vector w denotes v * 10^w.Pref() * m^e_m * s^e_s * ... . The zero
// value is dimensionless at prefix zero. Vectors are comparable.
type Vector struct {
	exps [numDimensions]Ratio
	pref int
}

// New returns the vector with the given exponents and prefix.
func New(m, s, kg, a, k, mol, cd Ratio, pref int) Vector {
	return Vector{
		exps: [numDimensions]Ratio{m, s, kg, a, k, mol, cd},
		pref: pref,
	}
}

// FromInts is the convenience parameterisation of New for integer
// exponents.
func FromInts(m, s, kg, a, k, mol, cd int64, pref int) Vector {
	return New(R(m, 1), R(s, 1), R(kg, 1), R(a, 1), R(k, 1), R(mol, 1), R(cd, 1), pref)
}

// Exact builds a vector from raw numerator/denominator pairs, in
// dimension order, without reducing them. It returns an error naming
// the first dimension whose pair is not in canonical form. Use R and
// New when reduction on the caller's behalf is wanted.
func Exact(exps [7][2]int64, pref int) (Vector, error) {
	var v Vector
	for i, e := range exps {
		if !reduced(e[0], e[1]) {
			return Vector{}, fmt.Errorf("dim: the %s exponent fraction is not irreducible", Dimension(i).Name())
		}
		v.exps[i] = Ratio{num: e[0], denMinusOne: e[1] - 1}
	}
	v.pref = pref
	return v, nil
}

// Base returns the vector with exponent one on d and zero elsewhere.
func Base(d Dimension) Vector {
	var v Vector
	v.exps[d] = R(1, 1)
	return v
}

// Prefixed returns the dimensionless vector at prefix p.
func Prefixed(p int) Vector {
	return Vector{pref: p}
}

// Exp returns the exponent of the given base dimension.
func (v Vector) Exp(d Dimension) Ratio { return v.exps[d] }

// Pref returns the decimal prefix exponent.
func (v Vector) Pref() int { return v.pref }

// IsDimless reports whether every exponent is zero. The prefix may
// still be nonzero.
func (v Vector) IsDimless() bool {
	return v.exps == [numDimensions]Ratio{}
}

// SameExponents reports whether v and o agree on all seven exponents,
// ignoring the prefix.
func (v Vector) SameExponents(o Vector) bool {
	return v.exps == o.exps
}

// Mul returns the vector of a product of quantities: the componentwise
// sum of the exponents, with the prefixes added.
func (v Vector) Mul(o Vector) Vector {
	var p Vector
	for i := range v.exps {
		p.exps[i] = v.exps[i].Add(o.exps[i])
	}
	p.pref = v.pref + o.pref
	return p
}

// Div returns the vector of a quotient of quantities: the
// componentwise difference of the exponents, with the prefixes
// subtracted.
func (v Vector) Div(o Vector) Vector {
	var q Vector
	for i := range v.exps {
		q.exps[i] = v.exps[i].Sub(o.exps[i])
	}
	q.pref = v.pref - o.pref
	return q
}

// Root returns the vector of an nth root: every exponent divided by n.
// The prefix must divide evenly by n; Root panics otherwise, since no
// vector can represent a fractional power of ten.
func (v Vector) Root(n int64) Vector {
	var r Vector
	for i := range v.exps {
		r.exps[i] = v.exps[i].Scaled(n)
	}
	if v.pref%int(n) != 0 {
		panic(fmt.Sprintf("dim: prefix exponent %d is not divisible by %d", v.pref, n))
	}
	r.pref = v.pref / int(n)
	return r
}
