package dim_test

import (
	"testing"

	"deedles.dev/si/dim"
	"github.com/stretchr/testify/require"
)

func TestRatioReduce(t *testing.T) {
	r := dim.R(2, 4)
	require.Equal(t, int64(1), r.Num())
	require.Equal(t, int64(2), r.Den())

	r = dim.R(2, -4)
	require.Equal(t, int64(-1), r.Num())
	require.Equal(t, int64(2), r.Den())

	r = dim.R(-2, -4)
	require.Equal(t, int64(1), r.Num())
	require.Equal(t, int64(2), r.Den())

	r = dim.R(0, -7)
	require.True(t, r.IsZero())
	require.Equal(t, int64(0), r.Num())
	require.Equal(t, int64(1), r.Den())

	require.Panics(t, func() { dim.R(1, 0) })
}

func TestRatioZeroValue(t *testing.T) {
	var r dim.Ratio
	require.True(t, r.IsZero())
	require.Equal(t, int64(1), r.Den())
	require.Equal(t, dim.R(0, 1), r)
}

func TestRatioArith(t *testing.T) {
	require.Equal(t, dim.R(5, 6), dim.R(1, 2).Add(dim.R(1, 3)))
	require.Equal(t, dim.R(1, 6), dim.R(1, 2).Sub(dim.R(1, 3)))
	require.Equal(t, dim.R(1, 1), dim.R(1, 2).Add(dim.R(1, 2)))
	require.Equal(t, dim.R(0, 1), dim.R(3, 7).Sub(dim.R(3, 7)))
	require.Equal(t, dim.R(-1, 2), dim.R(1, 2).Neg())
	require.Equal(t, dim.R(1, 4), dim.R(1, 2).Scaled(2))
	require.Equal(t, dim.R(1, 1), dim.R(3, 1).Scaled(3))
}

func TestRatioString(t *testing.T) {
	require.Equal(t, "3", dim.R(3, 1).String())
	require.Equal(t, "-2", dim.R(-2, 1).String())
	require.Equal(t, "1/2", dim.R(1, 2).String())
	require.Equal(t, "-3/4", dim.R(3, -4).String())
	require.Equal(t, "0", dim.Ratio{}.String())
}

func TestExact(t *testing.T) {
	one := [2]int64{0, 1}
	v, err := dim.Exact([7][2]int64{{1, 1}, {-2, 1}, one, one, one, one, one}, 0)
	require.NoError(t, err)
	require.Equal(t, dim.FromInts(1, -2, 0, 0, 0, 0, 0, 0), v)
}

func TestExactRejectsNonCanonical(t *testing.T) {
	one := [2]int64{0, 1}
	cases := []struct {
		at   int
		want string
	}{
		{0, "dim: the meter exponent fraction is not irreducible"},
		{1, "dim: the second exponent fraction is not irreducible"},
		{2, "dim: the kilogram exponent fraction is not irreducible"},
		{3, "dim: the ampere exponent fraction is not irreducible"},
		{4, "dim: the Kelvin exponent fraction is not irreducible"},
		{5, "dim: the mole exponent fraction is not irreducible"},
		{6, "dim: the candela exponent fraction is not irreducible"},
	}
	for _, c := range cases {
		exps := [7][2]int64{one, one, one, one, one, one, one}
		exps[c.at] = [2]int64{2, 4}
		_, err := dim.Exact(exps, 0)
		require.EqualError(t, err, c.want)
	}

	// A negative denominator and a denormal zero are both
	// non-canonical.
	exps := [7][2]int64{{1, -1}, one, one, one, one, one, one}
	_, err := dim.Exact(exps, 0)
	require.Error(t, err)
	exps = [7][2]int64{one, {0, 3}, one, one, one, one, one}
	_, err = dim.Exact(exps, 0)
	require.Error(t, err)
}

func TestVectorMulDiv(t *testing.T) {
	speed := dim.Base(dim.Meter).Div(dim.Base(dim.Second))
	require.Equal(t, dim.FromInts(1, -1, 0, 0, 0, 0, 0, 0), speed)

	accel := speed.Div(dim.Base(dim.Second))
	force := accel.Mul(dim.Base(dim.Kilogram))
	require.Equal(t, dim.FromInts(1, -2, 1, 0, 0, 0, 0, 0), force)

	require.Equal(t, dim.Vector{}, force.Div(force))
}

func TestVectorPrefix(t *testing.T) {
	km := dim.Base(dim.Meter).Mul(dim.Prefixed(3))
	require.Equal(t, 3, km.Pref())
	require.True(t, km.SameExponents(dim.Base(dim.Meter)))
	require.NotEqual(t, km, dim.Base(dim.Meter))

	require.Equal(t, -3, dim.Prefixed(3).Div(dim.Prefixed(6)).Pref())
	require.True(t, dim.Prefixed(5).IsDimless())
	require.False(t, dim.Base(dim.Candela).IsDimless())
}

func TestVectorRoot(t *testing.T) {
	area := dim.Base(dim.Meter).Mul(dim.Base(dim.Meter))
	require.Equal(t, dim.Base(dim.Meter), area.Root(2))

	half := dim.Base(dim.Meter).Root(2)
	require.Equal(t, dim.R(1, 2), half.Exp(dim.Meter))

	require.Panics(t, func() { dim.Prefixed(3).Root(2) })
	require.Equal(t, dim.Prefixed(2), dim.Prefixed(6).Root(3))
}

func TestVectorString(t *testing.T) {
	require.Equal(t, "", dim.Vector{}.String())
	require.Equal(t, "m", dim.Base(dim.Meter).String())
	require.Equal(t, "* 10^3 m", dim.Base(dim.Meter).Mul(dim.Prefixed(3)).String())
	require.Equal(t, "* 10^-3", dim.Prefixed(-3).String())
	require.Equal(t, "s^-1", dim.Vector{}.Div(dim.Base(dim.Second)).String())
	require.Equal(t, "m^2", dim.FromInts(2, 0, 0, 0, 0, 0, 0, 0).String())
	require.Equal(t, "m^(1/2)", dim.Base(dim.Meter).Root(2).String())
	require.Equal(t, "m s^-2 kg", dim.FromInts(1, -2, 1, 0, 0, 0, 0, 0).String())
	require.Equal(t, "m s kg A K mol cd", dim.FromInts(1, 1, 1, 1, 1, 1, 1, 0).String())
}

func TestVectorStringDeterministic(t *testing.T) {
	v := dim.FromInts(0, -2, 1, 0, 0, 0, 0, 6)
	w := dim.Base(dim.Kilogram).Div(dim.Base(dim.Second)).Div(dim.Base(dim.Second)).Mul(dim.Prefixed(6))
	require.Equal(t, v, w)
	require.Equal(t, v.String(), w.String())
	require.Equal(t, v.String(), v.String())
}

func TestTermsOrder(t *testing.T) {
	v := dim.FromInts(1, -2, 1, 0, 3, 0, 0, 0)
	var syms []string
	for term := range v.Terms() {
		syms = append(syms, term.Sym)
	}
	require.Equal(t, []string{"m", "s", "kg", "K"}, syms)
}
