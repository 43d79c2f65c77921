package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// Recursive builds a self-referential pattern: f is called once with a
// placeholder standing for the pattern being built, and must return
// the real definition in terms of it (directly or nested inside other
// combinators). The placeholder forwards to whatever f actually
// returned, resolved lazily on first use so that f may embed the
// placeholder in, say, an Or branch without f itself recursing.
//
// Returns InvalidPatternArgument if f is nil or if f returns the zero
// Pattern (an unset matcher pair, which would panic on first call
// rather than simply fail to match).
func Recursive[E, R any](f func(Pattern[E, R]) Pattern[E, R]) (Pattern[E, R], error) {
	if f == nil {
		return Pattern[E, R]{}, invalidArg("Recursive", "f", "must not be nil")
	}

	var resolved Pattern[E, R]

	placeholderFwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return resolved.forward(input, start)
	}
	placeholderBwd := func(input []E, start int) iter.Seq[token.Token[R]] {
		return resolved.backward(input, start)
	}
	placeholder := newPattern[E, R](placeholderFwd, placeholderBwd)

	resolved = f(placeholder)
	if resolved.forward == nil || resolved.backward == nil {
		return Pattern[E, R]{}, invalidArg("Recursive", "f", "must return a built pattern, not the zero value")
	}
	return placeholder, nil
}
