package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// Process maps every match of p through f, which sees the full Match
// (including its index and length) and returns a new result. Process
// must be a free function: it introduces a new result-type parameter
// (f's R2) beyond the receiver's own R.
func Process[E, R, R2 any](p Pattern[E, R], f func(Match[E, R]) R2) Pattern[E, R2] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R2]] {
		return func(yield func(token.Token[R2]) bool) {
			for t := range p.forward(input, start) {
				m := newMatch(input, start, t.Len, t.Value)
				if !yield(token.New(t.Len, f(m))) {
					return
				}
			}
		}
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R2]] {
		return func(yield func(token.Token[R2]) bool) {
			for t := range p.backward(input, start) {
				m := newMatch(input, start+t.Len, t.Len, t.Value)
				if !yield(token.New(t.Len, f(m))) {
					return
				}
			}
		}
	}
	return newPattern[E, R2](fwd, bwd)
}

// ProcessValue maps every match of p's result value through f, ignoring
// position and length. Like Process, it must be a free function.
func ProcessValue[E, R, R2 any](p Pattern[E, R], f func(R) R2) Pattern[E, R2] {
	return Process(p, func(m Match[E, R]) R2 { return f(m.Result()) })
}

// DoAction runs action on every match of p, purely for its side effect
// (logging, counting, collecting into an external slice); p's own
// results pass through unchanged. Expressible as a method since it
// introduces no new result type.
func (p Pattern[E, R]) DoAction(action func(Match[E, R])) Pattern[E, R] {
	return Process(p, func(m Match[E, R]) R {
		action(m)
		return m.Result()
	})
}

// DoFilter keeps only the matches of p for which pred reports true,
// discarding the rest. It changes which tokens are yielded, not their
// type, so it too is a method.
func (p Pattern[E, R]) DoFilter(pred func(Match[E, R]) bool) Pattern[E, R] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			for t := range p.forward(input, start) {
				m := newMatch(input, start, t.Len, t.Value)
				if !pred(m) {
					continue
				}
				if !yield(t) {
					return
				}
			}
		}
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			for t := range p.backward(input, start) {
				m := newMatch(input, start+t.Len, t.Len, t.Value)
				if !pred(m) {
					continue
				}
				if !yield(t) {
					return
				}
			}
		}
	}
	return newPattern[E, R](fwd, bwd)
}
