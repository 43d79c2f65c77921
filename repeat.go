package seqregex

import (
	"iter"
	"math"

	assert "github.com/PlayerR9/go-verify"
	"github.com/coregx/seqregex/internal/conv"
	"github.com/coregx/seqregex/token"
)

// unboundedMax stands in for "∞" in a repetition's max bound. Recursion
// through repeatCore never actually reaches this depth: the zero-width
// guard below bounds the useful recursion depth by the number of
// non-zero-width iterations the input admits.
const unboundedMax = math.MaxInt

func validateBounds(op string, min, max int) error {
	if min < 0 {
		return invalidArg(op, "min", "must be >= 0")
	}
	if max < min {
		return invalidArg(op, "max", "must be >= min")
	}
	return nil
}

// repeatCore is the single walk shared by every repetition combinator,
// discard and collect alike: at iteration level i, a non-greedy node
// offers its "stop here" token before trying another iteration, a
// greedy node offers it after.
//
// combineFwd/combineBwd fold each iteration's inner result into the
// accumulator built by the recursive tail; they differ because forward
// recursion descends through later source positions while backward
// recursion descends through earlier ones, so "prepend" and "append"
// swap roles to keep the accumulated sequence in source order in both
// directions.
func repeatCore[E, R, Acc any](
	inner Pattern[E, R],
	min, max int,
	greedy bool,
	zero Acc,
	combineFwd, combineBwd func(R, Acc) Acc,
) Pattern[E, Acc] {
	assert.Cond(min >= 0 && max >= min, "min >= 0 && max >= min")

	var walkFwd func(input []E, pos, i int, prevZero bool) iter.Seq[token.Token[Acc]]
	walkFwd = func(input []E, pos, i int, prevZero bool) iter.Seq[token.Token[Acc]] {
		return func(yield func(token.Token[Acc]) bool) {
			if !greedy && i >= min {
				if !yield(token.New(0, zero)) {
					return
				}
			}
			if i < max {
				for t := range inner.forward(input, pos) {
					if prevZero && t.Len == 0 && i >= min {
						continue
					}
					for tail := range walkFwd(input, pos+t.Len, i+1, t.Len == 0) {
						length := conv.AddLen(t.Len, tail.Len)
						if !yield(token.New(length, combineFwd(t.Value, tail.Value))) {
							return
						}
					}
				}
			}
			if greedy && i >= min {
				if !yield(token.New(0, zero)) {
					return
				}
			}
		}
	}

	var walkBwd func(input []E, pos, i int, prevZero bool) iter.Seq[token.Token[Acc]]
	walkBwd = func(input []E, pos, i int, prevZero bool) iter.Seq[token.Token[Acc]] {
		return func(yield func(token.Token[Acc]) bool) {
			if !greedy && i >= min {
				if !yield(token.New(0, zero)) {
					return
				}
			}
			if i < max {
				for t := range inner.backward(input, pos) {
					if prevZero && t.Len == 0 && i >= min {
						continue
					}
					for tail := range walkBwd(input, pos+t.Len, i+1, t.Len == 0) {
						length := conv.AddLen(t.Len, tail.Len)
						if !yield(token.New(length, combineBwd(t.Value, tail.Value))) {
							return
						}
					}
				}
			}
			if greedy && i >= min {
				if !yield(token.New(0, zero)) {
					return
				}
			}
		}
	}

	fwd := func(input []E, start int) iter.Seq[token.Token[Acc]] { return walkFwd(input, start, 0, false) }
	bwd := func(input []E, start int) iter.Seq[token.Token[Acc]] { return walkBwd(input, start, 0, false) }
	return newPattern[E, Acc](fwd, bwd)
}

func discardCombine[R any](_ R, acc R) R { return acc }

// RepeatRange repeats p between min and max times (inclusive), in
// greedy or lazy priority order, discarding each iteration's result
// (the combined token's value is always R's zero value — use
// RepeatCollect if the per-iteration results matter).
func (p Pattern[E, R]) RepeatRange(min, max int, greedy bool) (Pattern[E, R], error) {
	if err := validateBounds("RepeatRange", min, max); err != nil {
		return Pattern[E, R]{}, err
	}
	var zero R
	return repeatCore[E, R, R](p, min, max, greedy, zero, discardCombine[R], discardCombine[R]), nil
}

// Optional is {0,1} lazy: prefer zero repetitions.
func (p Pattern[E, R]) Optional() Pattern[E, R] {
	q, _ := p.RepeatRange(0, 1, false)
	return q
}

// OptionalGreedy is {0,1} greedy: prefer one repetition.
func (p Pattern[E, R]) OptionalGreedy() Pattern[E, R] {
	q, _ := p.RepeatRange(0, 1, true)
	return q
}

// Repeat is {0,∞} lazy (Kleene star, preferring fewer repetitions).
func (p Pattern[E, R]) Repeat() Pattern[E, R] {
	q, _ := p.RepeatRange(0, unboundedMax, false)
	return q
}

// RepeatGreedy is {0,∞} greedy (Kleene star, preferring more).
func (p Pattern[E, R]) RepeatGreedy() Pattern[E, R] {
	q, _ := p.RepeatRange(0, unboundedMax, true)
	return q
}

// RepeatMin is {min,∞} lazy.
func (p Pattern[E, R]) RepeatMin(min int) (Pattern[E, R], error) {
	return p.RepeatRange(min, unboundedMax, false)
}

// RepeatMinGreedy is {min,∞} greedy.
func (p Pattern[E, R]) RepeatMinGreedy(min int) (Pattern[E, R], error) {
	return p.RepeatRange(min, unboundedMax, true)
}

// Times is {n,n}; greediness is immaterial since min == max.
func (p Pattern[E, R]) Times(n int) (Pattern[E, R], error) {
	if n < 0 {
		return Pattern[E, R]{}, invalidArg("Times", "n", "must be >= 0")
	}
	return p.RepeatRange(n, n, true)
}

// RepeatWithSeparator matches p · (sep · p)*, with a lazy star unless
// greedy is true. sep's result, if any, is discarded; only p's own
// first-iteration result survives, and the results of the later
// iterations of p are dropped.
func (p Pattern[E, R]) RepeatWithSeparator(sep Pattern[E, token.Void], greedy bool) Pattern[E, R] {
	unit := Then(sep, p, func(_ token.Void, r R) R { return r })
	var tail Pattern[E, R]
	if greedy {
		tail = unit.RepeatGreedy()
	} else {
		tail = unit.Repeat()
	}
	return Then(p, tail, func(first, _ R) R { return first })
}

// RepeatCollect is the result-carrying variant of RepeatRange: it
// produces the ordered sequence ([]R) of every iteration's result,
// in source order regardless of matching direction.
func RepeatCollect[E, R any](p Pattern[E, R], min, max int, greedy bool) (Pattern[E, []R], error) {
	if err := validateBounds("RepeatCollect", min, max); err != nil {
		return Pattern[E, []R]{}, err
	}
	prepend := func(v R, tail []R) []R {
		out := make([]R, 0, len(tail)+1)
		out = append(out, v)
		return append(out, tail...)
	}
	appendTailFirst := func(v R, tail []R) []R {
		out := make([]R, 0, len(tail)+1)
		out = append(out, tail...)
		return append(out, v)
	}
	return repeatCore[E, R, []R](p, min, max, greedy, nil, prepend, appendTailFirst), nil
}
