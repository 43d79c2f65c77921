package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// LookAhead asserts that p matches forward from the current position,
// without consuming any input. Its result is p's own first match
// result. Like Start/End, the assertion itself is direction-
// independent: "p matches going forward from here" is checked the
// same way whether LookAhead sits inside a forward or a backward
// overall match, so both matcher slots run p.forward.
func (p Pattern[E, R]) LookAhead() Pattern[E, R] {
	f := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			t, ok := first(p.forward(input, start))
			if !ok {
				return
			}
			yield(token.New(0, t.Value))
		}
	}
	return newPattern[E, R](f, f)
}

// LookAheadNegative asserts that p does not match forward from the
// current position. It never consumes input and, since there is no
// match to draw a result from, always carries defaultValue.
func (p Pattern[E, R]) LookAheadNegative(defaultValue R) Pattern[E, R] {
	f := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			if any1(p.forward(input, start)) {
				return
			}
			yield(token.New(0, defaultValue))
		}
	}
	return newPattern[E, R](f, f)
}

// LookBehind asserts that p matches backward from the current position
// (i.e. ends exactly there), without consuming any input. Its result
// is p's own first match result.
func (p Pattern[E, R]) LookBehind() Pattern[E, R] {
	f := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			t, ok := first(p.backward(input, start))
			if !ok {
				return
			}
			yield(token.New(0, t.Value))
		}
	}
	return newPattern[E, R](f, f)
}

// LookBehindNegative asserts that p does not match backward from the
// current position.
func (p Pattern[E, R]) LookBehindNegative(defaultValue R) Pattern[E, R] {
	f := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			if any1(p.backward(input, start)) {
				return
			}
			yield(token.New(0, defaultValue))
		}
	}
	return newPattern[E, R](f, f)
}
