//go:build si_float32

package si

// Float is the default storage type used by the alias catalogue.
type Float = float32
