package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// Or is ordered alternation: every token of p, then every token of q,
// at the same start position. This is traditional backtracking A|B —
// a consumer that exhausts p's alternatives backtracks into q's.
func (p Pattern[E, R]) Or(q Pattern[E, R]) Pattern[E, R] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return concat(p.forward(input, start), q.forward(input, start))
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return concat(p.backward(input, start), q.backward(input, start))
	}
	return newPattern[E, R](fwd, bwd)
}

// OneOf is committed alternation: if p yields any token, only p's tokens
// are yielded; otherwise q's tokens are yielded. Once committed to p,
// there is no backtracking into q, even if a later combinator fails to
// extend every one of p's alternatives.
func (p Pattern[E, R]) OneOf(q Pattern[E, R]) Pattern[E, R] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			any := false
			for t := range p.forward(input, start) {
				any = true
				if !yield(t) {
					return
				}
			}
			if any {
				return
			}
			for t := range q.forward(input, start) {
				if !yield(t) {
					return
				}
			}
		}
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			any := false
			for t := range p.backward(input, start) {
				any = true
				if !yield(t) {
					return
				}
			}
			if any {
				return
			}
			for t := range q.backward(input, start) {
				if !yield(t) {
					return
				}
			}
		}
	}
	return newPattern[E, R](fwd, bwd)
}

// Ors is the left-associative fold of Or over ps. An empty ps yields a
// pattern that never matches.
func Ors[E, R any](ps ...Pattern[E, R]) Pattern[E, R] {
	if len(ps) == 0 {
		return neverMatch[E, R]()
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = acc.Or(p)
	}
	return acc
}

// OneOfs is the left-associative fold of OneOf over ps. An empty ps
// yields a pattern that never matches.
func OneOfs[E, R any](ps ...Pattern[E, R]) Pattern[E, R] {
	if len(ps) == 0 {
		return neverMatch[E, R]()
	}
	acc := ps[0]
	for _, p := range ps[1:] {
		acc = acc.OneOf(p)
	}
	return acc
}

// neverMatch is a pattern whose forward and backward matchers always
// yield no tokens.
func neverMatch[E, R any]() Pattern[E, R] {
	f := func(_ []E, _ int) iter.Seq[token.Token[R]] { return none[R]() }
	return newPattern[E, R](f, f)
}
