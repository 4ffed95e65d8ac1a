package dim

import (
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync"

	"deedles.dev/xiter"
)

// Term is one nonzero exponent of a vector paired with its dimension
// symbol.
type Term struct {
	Sym string
	Exp Ratio
}

// String renders the term: the bare symbol for an exponent of one,
// "sym^n" for other integer exponents, and "sym^(n/d)" for fractional
// ones.
func (t Term) String() string {
	switch {
	case t.Exp.IsInt() && t.Exp.Num() == 1:
		return t.Sym
	case t.Exp.IsInt():
		return t.Sym + "^" + strconv.FormatInt(t.Exp.Num(), 10)
	default:
		return t.Sym + "^(" + t.Exp.String() + ")"
	}
}

// Terms yields the nonzero exponents of v in the fixed dimension order
// m, s, kg, A, K, mol, cd.
func (v Vector) Terms() iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for i, e := range v.exps {
			if e.IsZero() {
				continue
			}
			if !yield(Term{Sym: Dimension(i).String(), Exp: e}) {
				return
			}
		}
	}
}

// unitStrings memoises the rendered unit string per vector. The value
// is deterministic from the key, so racing first accesses are
// harmless.
var unitStrings sync.Map // Vector -> string

// String returns the human-readable unit string of v: a "* 10^p" token
// when the prefix is nonzero, followed by one token per nonzero
// exponent, space-separated. The dimensionless prefix-zero vector
// renders as the empty string.
func (v Vector) String() string {
	if s, ok := unitStrings.Load(v); ok {
		return s.(string)
	}
	s, _ := unitStrings.LoadOrStore(v, v.render())
	return s.(string)
}

func (v Vector) render() string {
	var tokens []string
	if v.pref != 0 {
		tokens = append(tokens, "* 10^"+strconv.Itoa(v.pref))
	}
	tokens = append(tokens, slices.Collect(xiter.Map(v.Terms(), Term.String))...)
	return strings.Join(tokens, " ")
}
