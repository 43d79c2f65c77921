// Package seqregex implements a regular-expression engine that matches
// over arbitrary typed sequences rather than strings alone. Patterns are
// built programmatically from combinators — there is no textual notation
// to parse — and every combinator produces both a forward and a backward
// matcher, so a Pattern can drive a search in either direction from the
// same construction.
//
// A Pattern carries a result type parameter R. Patterns with nothing to
// report beyond "matched, this many elements" instantiate R as
// token.Void; patterns built with the result-threading combinators
// (Then, Process, And/AndExact/AndReverse, RepeatCollect, Recursive) carry a
// caller-chosen R composed structurally as the pattern is built, turning
// a successful top-level match into a parsed value.
package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// Pattern is an immutable handle bundling a forward and a backward
// matcher. Patterns are built by the constructors and combinators in
// this package and are safe to reuse and to share across goroutines
// provided the input slice is not mutated during matching and no
// DoAction callback retains mutable state of its own.
type Pattern[E, R any] struct {
	forward  Func[E, R]
	backward Func[E, R]
}

// newPattern builds a Pattern from an already-paired forward/backward
// matcher. It is the single place every combinator in this package
// goes through, so the forward/backward duality invariant only has to
// be proven once per combinator.
func newPattern[E, R any](forward, backward Func[E, R]) Pattern[E, R] {
	return Pattern[E, R]{forward: forward, backward: backward}
}

// NewPattern is newPattern's exported counterpart, for packages outside
// seqregex that implement their own primitive matchers rather than
// composing existing ones — e.g. literal's Aho-Corasick-backed
// accelerator, which computes its forward token stream against a
// compiled automaton and its backward one by comparing literals
// directly. Ordinary pattern-building code
// should reach for the combinators in this package instead.
func NewPattern[E, R any](forward, backward Func[E, R]) Pattern[E, R] {
	return newPattern(forward, backward)
}

// Forward returns the lazy, priority-ordered sequence of tokens p
// matches starting at input[start:]. The first token in iteration order
// is the preferred match.
func (p Pattern[E, R]) Forward(input []E, start int) iter.Seq[token.Token[R]] {
	return p.forward(input, start)
}

// Backward returns the lazy, priority-ordered sequence of tokens p
// matches ending at input[:start]. Lengths are non-positive.
func (p Pattern[E, R]) Backward(input []E, start int) iter.Seq[token.Token[R]] {
	return p.backward(input, start)
}
