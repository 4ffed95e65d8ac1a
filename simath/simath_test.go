package simath_test

import (
	"math"
	"testing"

	"deedles.dev/si"
	"deedles.dev/si/dim"
	"deedles.dev/si/simath"
	"github.com/stretchr/testify/require"
)

// tenToFour is a dimensionless marker at prefix four, which no
// composition of the catalogue's prefixes produces.
type tenToFour struct{}

func (tenToFour) Vector() dim.Vector { return dim.Prefixed(4) }

func TestForwardsKeepDimension(t *testing.T) {
	require.True(t, simath.Abs(si.Meters(-3)).Equal(si.Meters(3)))
	require.True(t, simath.Ceil(si.Seconds(1.2)).Equal(si.Seconds(2)))
	require.True(t, simath.Floor(si.Seconds(1.8)).Equal(si.Seconds(1)))
	require.True(t, simath.Trunc(si.Seconds(-1.8)).Equal(si.Seconds(-1)))
	require.True(t, simath.Round(si.Seconds(2.5)).Equal(si.Seconds(3)))
	require.True(t, simath.Min(si.Kilograms(2), si.Kilograms(5)).Equal(si.Kilograms(2)))
	require.True(t, simath.Max(si.Kilograms(2), si.Kilograms(5)).Equal(si.Kilograms(5)))
	require.True(t, simath.Dim(si.Kilograms(5), si.Kilograms(2)).Equal(si.Kilograms(3)))
	require.True(t, simath.Dim(si.Kilograms(2), si.Kilograms(5)).Equal(si.Kilograms(0)))
}

func TestHypot(t *testing.T) {
	h := simath.Hypot(si.Meters(3), si.Meters(4))
	require.True(t, h.Equal(si.Meters(5)))
	require.Equal(t, "m", h.Unit())
}

func TestTranscendentals(t *testing.T) {
	require.InDelta(t, 1.0, simath.Exp(si.Scalar(0)).Value(), 1e-15)
	require.InDelta(t, 8.0, simath.Exp2(si.Scalar(3)).Value(), 1e-15)
	require.InDelta(t, 1.0, simath.Log(si.Scalar(math.E)).Value(), 1e-15)
	require.InDelta(t, 3.0, simath.Log2(si.Scalar(8)).Value(), 1e-15)
	require.InDelta(t, 2.0, simath.Log10(si.Scalar(100)).Value(), 1e-15)
	require.InDelta(t, 0.0, simath.Sin(si.Scalar(0)).Value(), 1e-15)
	require.InDelta(t, 1.0, simath.Cos(si.Scalar(0)).Value(), 1e-15)
	require.InDelta(t, 0.0, simath.Tan(si.Scalar(0)).Value(), 1e-15)
	require.InDelta(t, math.Pi/2, simath.Asin(si.Scalar(1)).Value(), 1e-15)
	require.InDelta(t, 0.0, simath.Acos(si.Scalar(1)).Value(), 1e-15)
	require.InDelta(t, math.Pi/4, simath.Atan(si.Scalar(1)).Value(), 1e-15)
}

func TestAtan2(t *testing.T) {
	angle := simath.Atan2(si.Meters(1), si.Meters(1))
	require.InDelta(t, math.Pi/4, angle.Value(), 1e-15)
	require.Equal(t, "", angle.Unit())
}

func TestFMA(t *testing.T) {
	z := si.Of[si.Prod[si.MeterDim, si.KilogramDim]](4.0)
	r := simath.FMA(si.Meters(2), si.Kilograms(3), z)
	require.Equal(t, 10.0, r.Value())
	require.Equal(t, "m kg", r.Unit())
}

func TestSqrt(t *testing.T) {
	root := simath.Sqrt(si.MetersSq(9))
	require.Equal(t, 3.0, root.Value())
	require.Equal(t, si.Meters(0).Dim(), root.Dim())

	// The root of an area is a length, modulo spelling.
	length := si.As[si.MeterDim](root)
	require.True(t, length.Equal(si.Meters(3)))

	half := simath.Sqrt(si.Meters(2))
	require.Equal(t, "m^(1/2)", half.Unit())

	// Kilo has prefix 3; no type can hold its square root.
	require.Panics(t, func() { simath.Sqrt(si.Kilo(4)) })
}

func TestCbrt(t *testing.T) {
	root := simath.Cbrt(si.MetersCu(27))
	require.Equal(t, 3.0, root.Value())
	require.Equal(t, si.Meters(0).Dim(), root.Dim())
	require.Panics(t, func() { simath.Cbrt(si.Of[tenToFour](8.0)) })
}

func TestFloat32Storage(t *testing.T) {
	q := si.Of[si.MeterDim](float32(2))
	require.Equal(t, float32(4), simath.Abs(si.Of[si.MeterDim](float32(-4))).Value())
	require.Equal(t, float32(2), q.Value())
}
