package seqregex

import (
	"iter"

	"github.com/coregx/seqregex/token"
)

// Empty matches the zero-width string at any position: both directions
// always yield a single length-0 token.
func Empty[E any]() Pattern[E, token.Void] {
	zero := func(_ []E, _ int) iter.Seq[token.Token[token.Void]] {
		return single(token.NewVoid(0))
	}
	return newPattern[E, token.Void](zero, zero)
}

// Any matches a single element in either direction: forward succeeds
// unless already at the end of input, backward unless already at the
// start.
func Any[E any]() Pattern[E, token.Void] {
	fwd := func(input []E, start int) iter.Seq[token.Token[token.Void]] {
		if start < len(input) {
			return single(token.NewVoid(1))
		}
		return none[token.Void]()
	}
	bwd := func(_ []E, start int) iter.Seq[token.Token[token.Void]] {
		if start > 0 {
			return single(token.NewVoid(-1))
		}
		return none[token.Void]()
	}
	return newPattern[E, token.Void](fwd, bwd)
}

// Start matches the zero-width position before the first element. The
// same test (start == 0) applies in both directions: the window a
// zero-width pattern occupies is [0,0), so a backward matcher asked for
// a token ending at position b only succeeds when b == 0 too.
func Start[E any]() Pattern[E, token.Void] {
	f := func(_ []E, start int) iter.Seq[token.Token[token.Void]] {
		if start == 0 {
			return single(token.NewVoid(0))
		}
		return none[token.Void]()
	}
	return newPattern[E, token.Void](f, f)
}

// End matches the zero-width position after the last element, with the
// same forward/backward symmetry as Start.
func End[E any]() Pattern[E, token.Void] {
	f := func(input []E, start int) iter.Seq[token.Token[token.Void]] {
		if start == len(input) {
			return single(token.NewVoid(0))
		}
		return none[token.Void]()
	}
	return newPattern[E, token.Void](f, f)
}

// Literal matches a single element equal to e under cmp. Returns
// InvalidPatternArgument if cmp is nil.
func Literal[E any](e E, cmp Comparer[E]) (Pattern[E, token.Void], error) {
	if cmp == nil {
		return Pattern[E, token.Void]{}, invalidArg("Literal", "cmp", "comparer must not be nil")
	}
	fwd := func(input []E, start int) iter.Seq[token.Token[token.Void]] {
		if start < len(input) && cmp(input[start], e) {
			return single(token.NewVoid(1))
		}
		return none[token.Void]()
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[token.Void]] {
		if start > 0 && cmp(input[start-1], e) {
			return single(token.NewVoid(-1))
		}
		return none[token.Void]()
	}
	return newPattern[E, token.Void](fwd, bwd), nil
}

// MustLiteral is Literal, panicking instead of returning an error.
func MustLiteral[E any](e E, cmp Comparer[E]) Pattern[E, token.Void] {
	p, err := Literal(e, cmp)
	if err != nil {
		panic(err)
	}
	return p
}

// LiteralSeq matches the whole window of elements es in order, under
// cmp. Returns InvalidPatternArgument if cmp is nil.
func LiteralSeq[E any](es []E, cmp Comparer[E]) (Pattern[E, token.Void], error) {
	if cmp == nil {
		return Pattern[E, token.Void]{}, invalidArg("LiteralSeq", "cmp", "comparer must not be nil")
	}
	k := len(es)
	fwd := func(input []E, start int) iter.Seq[token.Token[token.Void]] {
		if start+k > len(input) {
			return none[token.Void]()
		}
		for i := 0; i < k; i++ {
			if !cmp(input[start+i], es[i]) {
				return none[token.Void]()
			}
		}
		return single(token.NewVoid(k))
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[token.Void]] {
		if start-k < 0 {
			return none[token.Void]()
		}
		for i := 0; i < k; i++ {
			if !cmp(input[start-k+i], es[i]) {
				return none[token.Void]()
			}
		}
		return single(token.NewVoid(-k))
	}
	return newPattern[E, token.Void](fwd, bwd), nil
}

// MustLiteralSeq is LiteralSeq, panicking instead of returning an error.
func MustLiteralSeq[E any](es []E, cmp Comparer[E]) Pattern[E, token.Void] {
	p, err := LiteralSeq(es, cmp)
	if err != nil {
		panic(err)
	}
	return p
}

// Predicate matches a single element satisfying p.
func Predicate[E any](p func(E) bool) Pattern[E, token.Void] {
	fwd := func(input []E, start int) iter.Seq[token.Token[token.Void]] {
		if start < len(input) && p(input[start]) {
			return single(token.NewVoid(1))
		}
		return none[token.Void]()
	}
	bwd := func(input []E, start int) iter.Seq[token.Token[token.Void]] {
		if start > 0 && p(input[start-1]) {
			return single(token.NewVoid(-1))
		}
		return none[token.Void]()
	}
	return newPattern[E, token.Void](fwd, bwd)
}

// NotElement matches a single element not equal to e under cmp. Returns
// InvalidPatternArgument if cmp is nil.
func NotElement[E any](e E, cmp Comparer[E]) (Pattern[E, token.Void], error) {
	if cmp == nil {
		return Pattern[E, token.Void]{}, invalidArg("NotElement", "cmp", "comparer must not be nil")
	}
	return Predicate(func(x E) bool { return !cmp(x, e) }), nil
}

// NotAnyOf matches a single element equal to none of es under cmp.
// Returns InvalidPatternArgument if cmp is nil.
func NotAnyOf[E any](es []E, cmp Comparer[E]) (Pattern[E, token.Void], error) {
	if cmp == nil {
		return Pattern[E, token.Void]{}, invalidArg("NotAnyOf", "cmp", "comparer must not be nil")
	}
	return Predicate(func(x E) bool {
		for _, e := range es {
			if cmp(x, e) {
				return false
			}
		}
		return true
	}), nil
}

// Sequence concatenates ps in order, discarding any results (equivalent
// to repeated ThenDiscard starting from Empty).
func Sequence[E any](ps []Pattern[E, token.Void]) Pattern[E, token.Void] {
	acc := Empty[E]()
	for _, p := range ps {
		acc = acc.ThenDiscard(p)
	}
	return acc
}
