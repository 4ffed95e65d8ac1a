//go:build !si_float32

package si

// Float is the default storage type used by the alias catalogue. Build
// with the si_float32 tag to shrink it to float32.
type Float = float64
