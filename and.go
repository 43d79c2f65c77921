package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// And succeeds where p succeeds, additionally requiring that the
// matched window contains a match for q, and attaches q's first-match
// result to the outer token (the token keeps p's window geometry —
// same start, same length — but its Value becomes q's). A free
// function rather than a method because it introduces q's own result
// type R2 beyond the receiver's R, which Go does not allow a method to
// do.
//
// "Contains" means q need not span the whole window: a token t of p
// survives if q yields any token starting at t's start position and
// ending at or before t's end (forward), or the mirror check backward.
func And[E, R, R2 any](p Pattern[E, R], q Pattern[E, R2]) Pattern[E, R2] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R2]] {
		return func(yield func(token.Token[R2]) bool) {
			for t := range p.forward(input, start) {
				qt, ok := firstWithin(q.forward(input, start), t.Len)
				if !ok {
					continue
				}
				if !yield(token.New(t.Len, qt.Value)) {
					return
				}
			}
		}
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R2]] {
		return func(yield func(token.Token[R2]) bool) {
			for t := range p.backward(input, start) {
				qt, ok := firstWithinBackward(q.backward(input, start), -t.Len)
				if !ok {
					continue
				}
				if !yield(token.New(t.Len, qt.Value)) {
					return
				}
			}
		}
	}
	return newPattern[E, R2](fwd, bwd)
}

// AndExact is And, but requires q to match the exact same window as p
// (same start, same length), not merely some sub-window of it.
func AndExact[E, R, R2 any](p Pattern[E, R], q Pattern[E, R2]) Pattern[E, R2] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R2]] {
		return func(yield func(token.Token[R2]) bool) {
			for t := range p.forward(input, start) {
				qt, ok := firstExact(q.forward(input, start), t.Len)
				if !ok {
					continue
				}
				if !yield(token.New(t.Len, qt.Value)) {
					return
				}
			}
		}
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R2]] {
		return func(yield func(token.Token[R2]) bool) {
			for t := range p.backward(input, start) {
				qt, ok := firstExact(q.backward(input, start), t.Len)
				if !ok {
					continue
				}
				if !yield(token.New(t.Len, qt.Value)) {
					return
				}
			}
		}
	}
	return newPattern[E, R2](fwd, bwd)
}

// AndReverse is And, but q is matched in the opposite direction over
// the same window: p's forward token is checked against q's backward
// matcher anchored at the token's end, and vice versa. This is the
// co-occurrence check for "this also matches when read the other way".
func AndReverse[E, R, R2 any](p Pattern[E, R], q Pattern[E, R2]) Pattern[E, R2] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R2]] {
		return func(yield func(token.Token[R2]) bool) {
			for t := range p.forward(input, start) {
				qt, ok := firstExact(q.backward(input, start+t.Len), -t.Len)
				if !ok {
					continue
				}
				if !yield(token.New(t.Len, qt.Value)) {
					return
				}
			}
		}
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[R2]] {
		return func(yield func(token.Token[R2]) bool) {
			for t := range p.backward(input, start) {
				qt, ok := firstExact(q.forward(input, start+t.Len), -t.Len)
				if !ok {
					continue
				}
				if !yield(token.New(t.Len, qt.Value)) {
					return
				}
			}
		}
	}
	return newPattern[E, R2](fwd, bwd)
}

// AndFilter is And without the result attachment: it keeps only p's
// tokens for which q matches somewhere within the same window and
// discards q's result entirely (q must itself carry none). Expressible
// as a method, unlike And, because it introduces no type parameter
// beyond the receiver's own R — useful when q is a pure co-occurrence
// check (an assertion) rather than a source of data.
func (p Pattern[E, R]) AndFilter(q Pattern[E, token.Void]) Pattern[E, R] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			for t := range p.forward(input, start) {
				if !andWindowForward(q, input, start, t.Len) {
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
				if !andWindowBackward(q, input, start, -t.Len) {
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

// AndExactFilter is AndFilter, but requires q to match the exact same
// window as p.
func (p Pattern[E, R]) AndExactFilter(q Pattern[E, token.Void]) Pattern[E, R] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			for t := range p.forward(input, start) {
				if !exactWindow(q.forward(input, start), t.Len) {
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
				if !exactWindow(q.backward(input, start), t.Len) {
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

// AndReverseFilter is AndFilter, but q is matched in the opposite
// direction over the same window, as AndReverse.
func (p Pattern[E, R]) AndReverseFilter(q Pattern[E, token.Void]) Pattern[E, R] {
	fwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return func(yield func(token.Token[R]) bool) {
			for t := range p.forward(input, start) {
				if !exactWindow(q.backward(input, start+t.Len), -t.Len) {
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
				if !exactWindow(q.forward(input, start+t.Len), -t.Len) {
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

// andWindowForward reports whether q has any match starting at start
// whose length is at most width.
func andWindowForward[E any](q Pattern[E, token.Void], input []E, start, width int) bool {
	for t := range q.forward(input, start) {
		if t.Len <= width {
			return true
		}
	}
	return false
}

// andWindowBackward reports whether q has any match ending at start
// whose length is at most width in magnitude.
func andWindowBackward[E any](q Pattern[E, token.Void], input []E, start, width int) bool {
	for t := range q.backward(input, start) {
		if -t.Len <= width {
			return true
		}
	}
	return false
}

// exactWindow reports whether s yields a token of exactly length.
func exactWindow[R any](s iter.Seq[token.Token[R]], length int) bool {
	for t := range s {
		if t.Len == length {
			return true
		}
	}
	return false
}

func firstWithin[R any](s iter.Seq[token.Token[R]], maxWidth int) (token.Token[R], bool) {
	for t := range s {
		if t.Len <= maxWidth {
			return t, true
		}
	}
	var zero token.Token[R]
	return zero, false
}

func firstWithinBackward[R any](s iter.Seq[token.Token[R]], maxWidth int) (token.Token[R], bool) {
	for t := range s {
		if -t.Len <= maxWidth {
			return t, true
		}
	}
	var zero token.Token[R]
	return zero, false
}

func firstExact[R any](s iter.Seq[token.Token[R]], length int) (token.Token[R], bool) {
	for t := range s {
		if t.Len == length {
			return t, true
		}
	}
	var zero token.Token[R]
	return zero, false
}
