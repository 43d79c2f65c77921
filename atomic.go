package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// Atomic truncates p to its first token in each direction: once p has
// committed to a match at a position, no other alternative of p is
// ever tried, even if the surrounding pattern fails to extend it. This
// is the backtracking-suppression primitive for groups that should not
// be re-explored token by token.
func (p Pattern[E, R]) Atomic() Pattern[E, R] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return take1(p.forward(input, start))
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return take1(p.backward(input, start))
	}
	return newPattern[E, R](fwd, bwd)
}
