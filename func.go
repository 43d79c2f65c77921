package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// Func is a matcher: a pure function from an input sequence and a start
// position to a lazy, priority-ordered sequence of match tokens. Calling
// a Func twice with the same arguments must produce independent sequences
// with identical contents (re-entrancy), which iter.Seq gives for free
// since each range loop re-invokes the function from the top.
type Func[E, R any] func(input []E, start int) iter.Seq[token.Token[R]]

// single is a matcher-shaped iterator yielding exactly one token.
func single[R any](t token.Token[R]) iter.Seq[token.Token[R]] {
	return func(yield func(token.Token[R]) bool) {
		yield(t)
	}
}

// none is a matcher-shaped iterator yielding no tokens.
func none[R any]() iter.Seq[token.Token[R]] {
	return func(yield func(token.Token[R]) bool) {}
}

// concat yields every token of a, then every token of b. This is the
// building block for Or: priority order is a's tokens before b's.
func concat[R any](a, b iter.Seq[token.Token[R]]) iter.Seq[token.Token[R]] {
	return func(yield func(token.Token[R]) bool) {
		for t := range a {
			if !yield(t) {
				return
			}
		}
		for t := range b {
			if !yield(t) {
				return
			}
		}
	}
}

// take1 yields at most the first token of s. This is Atomic: truncating
// a token stream to its first element suppresses backtracking into it.
func take1[R any](s iter.Seq[token.Token[R]]) iter.Seq[token.Token[R]] {
	return func(yield func(token.Token[R]) bool) {
		for t := range s {
			yield(t)
			return
		}
	}
}

// any1 reports whether s yields at least one token, without exposing it
// to the caller. Used by negative look-around and the IsMatch drivers.
func any1[R any](s iter.Seq[token.Token[R]]) bool {
	for range s {
		return true
	}
	return false
}

// first returns the first token of s and true, or the zero token and
// false if s yields nothing.
func first[R any](s iter.Seq[token.Token[R]]) (token.Token[R], bool) {
	for t := range s {
		return t, true
	}
	var zero token.Token[R]
	return zero, false
}
