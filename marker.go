package si

import "deedles.dev/si/dim"

// ScalarDim is the dimensionless marker at prefix zero. It is the
// multiplicative identity of the marker algebra.
type ScalarDim struct{}

func (ScalarDim) Vector() dim.Vector { return dim.Vector{} }

// The seven base markers, one per SI base dimension.
type (
	MeterDim    struct{}
	SecondDim   struct{}
	KilogramDim struct{}
	AmpereDim   struct{}
	KelvinDim   struct{}
	MoleDim     struct{}
	CandelaDim  struct{}
)

func (MeterDim) Vector() dim.Vector    { return dim.Base(dim.Meter) }
func (SecondDim) Vector() dim.Vector   { return dim.Base(dim.Second) }
func (KilogramDim) Vector() dim.Vector { return dim.Base(dim.Kilogram) }
func (AmpereDim) Vector() dim.Vector   { return dim.Base(dim.Ampere) }
func (KelvinDim) Vector() dim.Vector   { return dim.Base(dim.Kelvin) }
func (MoleDim) Vector() dim.Vector     { return dim.Base(dim.Mole) }
func (CandelaDim) Vector() dim.Vector  { return dim.Base(dim.Candela) }

// KiloDim is the dimensionless marker at prefix three. Every other
// decimal prefix in the catalogue is composed from it.
type KiloDim struct{}

func (KiloDim) Vector() dim.Vector { return dim.Prefixed(3) }

// Prod marks the dimension of a product: exponents added, prefixes
// added.
type Prod[A, B Dim] struct{}

func (Prod[A, B]) Vector() dim.Vector {
	return vectorOf[A]().Mul(vectorOf[B]())
}

// Quot marks the dimension of a quotient: exponents subtracted,
// prefixes subtracted.
type Quot[A, B Dim] struct{}

func (Quot[A, B]) Vector() dim.Vector {
	return vectorOf[A]().Div(vectorOf[B]())
}

// ScalarOf marks the scalar type associated with D: all exponents
// zero, at D's prefix. It represents a pure dimensionless multiplier
// on the same scale as a quantity of dimension D.
type ScalarOf[D Dim] struct{}

func (ScalarOf[D]) Vector() dim.Vector {
	return dim.Prefixed(vectorOf[D]().Pref())
}

// Root marks the dimension of a square root: every exponent halved.
// Its Vector panics when D's prefix is odd, since the result would
// need a fractional power of ten.
type Root[D Dim] struct{}

func (Root[D]) Vector() dim.Vector { return vectorOf[D]().Root(2) }

// CubeRoot marks the dimension of a cube root.
type CubeRoot[D Dim] struct{}

func (CubeRoot[D]) Vector() dim.Vector { return vectorOf[D]().Root(3) }
