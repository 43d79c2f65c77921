package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/internal/conv"
	"github.com/coregx/seqregex/token"
)

// Then sequences p then q: a combined token is produced for every token
// t1 of p and every token t2 of q evaluated at the position t1 leaves
// off at, in that nested order (outer over p, inner over q), with
// lengths added and results combined by combine. Backward, the same
// combine is applied in the same (left, right) argument order even
// though q is walked before p — see Pattern's backward matcher contract.
//
// Then must be a free function rather than a method because it
// introduces two new result-type parameters (q's R2 and the combined
// R) beyond whatever the receiver's own R is bound to, and Go does not
// allow a method to add type parameters beyond its receiver's.
func Then[E, R1, R2, R any](p Pattern[E, R1], q Pattern[E, R2], combine func(R1, R2) R) Pattern[E, R] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			for t1 := range p.forward(input, start) {
				for t2 := range q.forward(input, start+t1.Len) {
					length := conv.AddLen(t1.Len, t2.Len)
					if !yield(token.New(length, combine(t1.Value, t2.Value))) {
						return
					}
				}
			}
		}
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			for t2 := range q.backward(input, start) {
				for t1 := range p.backward(input, start+t2.Len) {
					length := conv.AddLen(t1.Len, t2.Len)
					if !yield(token.New(length, combine(t1.Value, t2.Value))) {
						return
					}
				}
			}
		}
	}
	return newPattern[E, R](fwd, bwd)
}

// ThenLeft sequences p then q, keeping only p's result (q carries none).
func ThenLeft[E, R any](p Pattern[E, R], q Pattern[E, token.Void]) Pattern[E, R] {
	return Then(p, q, func(r R, _ token.Void) R { return r })
}

// ThenRight sequences p then q, keeping only q's result (p carries none).
func ThenRight[E, R any](p Pattern[E, token.Void], q Pattern[E, R]) Pattern[E, R] {
	return Then(p, q, func(_ token.Void, r R) R { return r })
}

// ThenDiscard sequences p then q, keeping p's result and discarding q's
// (which must itself carry none). Expressible as a method, unlike
// Then/ThenLeft/ThenRight, because it introduces no type parameter
// beyond the receiver's own R.
func (p Pattern[E, R]) ThenDiscard(q Pattern[E, token.Void]) Pattern[E, R] {
	return Then(p, q, func(r R, _ token.Void) R { return r })
}

// Pair holds both halves of a ThenBoth result.
type Pair[R1, R2 any] struct {
	First  R1
	Second R2
}

// ThenBoth sequences p then q, keeping both results as a pair.
func ThenBoth[E, R1, R2 any](p Pattern[E, R1], q Pattern[E, R2]) Pattern[E, Pair[R1, R2]] {
	return Then(p, q, func(r1 R1, r2 R2) Pair[R1, R2] { return Pair[R1, R2]{First: r1, Second: r2} })
}
