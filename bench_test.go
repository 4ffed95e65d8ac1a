//go:build go1.24

package si_test

import (
	"testing"

	"deedles.dev/si"
)

func BenchmarkMulDiv(b *testing.B) {
	for b.Loop() {
		f := si.Div(
			si.Mul(si.Meters(1), si.Kilograms(2)),
			si.Mul(si.Seconds(1), si.Seconds(1)),
		)
		_ = f.Value()
	}
}

func BenchmarkUnit(b *testing.B) {
	for b.Loop() {
		_ = si.Volts(1).Unit()
	}
}
