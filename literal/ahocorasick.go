package literal

import (
	"bytes"
	"iter"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/seqregex"
	"github.com/coregx/seqregex/token"
)

// CommitAhoCorasick accelerates a committed byte-literal alternation
// using an Aho-Corasick automaton built once over lits, instead of the
// per-position linear scan OneOfLiterals performs. It is meant for the
// case OneOfLiterals already covers — match whichever of a (possibly
// large) literal set appears at the current position — when lits is
// large enough that building the automaton once and querying it pays
// for itself over the construction-time prefix grouping.
//
// The result is the index into lits of the literal that matched.
// github.com/coregx/ahocorasick's Automaton.Find reports only a
// window (Start, End) into the haystack, not which pattern produced
// it, so the matched literal is recovered by comparing that window's
// bytes back against lits; Find itself decides which single candidate
// wins at a given position (the automaton gives no way to enumerate
// every literal matching there), so unlike OneOfLiterals this
// accessor does not guarantee a longest-match tie-break — it reports
// whatever the automaton finds. Construction fails with
// *seqregex.InvalidPatternArgument if lits is empty.
//
// The automaton only accelerates forward matching; Aho-Corasick is
// inherently a left-to-right structure, and building a second, mirrored
// trie purely to accelerate the backward direction is not worth it for
// what is meant to be a narrow, optional accelerator — the backward
// matcher instead compares each literal directly against the window
// ending at the current position.
func CommitAhoCorasick(lits [][]byte) (seqregex.Pattern[byte, int], error) {
	if len(lits) == 0 {
		return seqregex.Pattern[byte, int]{}, &seqregex.InvalidPatternArgument{
			Op: "CommitAhoCorasick", Arg: "lits", Reason: "must not be empty",
		}
	}

	builder := ahocorasick.NewBuilder()
	for _, lit := range lits {
		builder.AddPattern(lit)
	}
	auto, err := builder.Build()
	if err != nil {
		return seqregex.Pattern[byte, int]{}, &seqregex.InvalidPatternArgument{
			Op: "CommitAhoCorasick", Arg: "lits", Reason: err.Error(),
		}
	}

	fwd := func(input []byte, start int) iter.Seq[token.Token[int]] {
		return func(yield func(token.Token[int]) bool) {
			m := auto.Find(input, start)
			if m == nil || m.Start != start {
				return
			}
			idx := indexOfLiteral(lits, input[m.Start:m.End])
			if idx < 0 {
				return
			}
			yield(token.New(m.End-m.Start, idx))
		}
	}

	bwd := func(input []byte, start int) iter.Seq[token.Token[int]] {
		return func(yield func(token.Token[int]) bool) {
			bestIdx, bestLen := -1, -1
			for i, lit := range lits {
				n := len(lit)
				if n > start {
					continue
				}
				if n > bestLen && bytes.Equal(input[start-n:start], lit) {
					bestLen, bestIdx = n, i
				}
			}
			if bestIdx < 0 {
				return
			}
			yield(token.New(-bestLen, bestIdx))
		}
	}

	return seqregex.NewPattern[byte, int](fwd, bwd), nil
}

// indexOfLiteral returns the index of the first literal in lits equal
// to matched, or -1 if none matches (which should not happen for a
// window Find itself reported, barring duplicate-content literals
// where the first duplicate's index is reported).
func indexOfLiteral(lits [][]byte, matched []byte) int {
	for i, lit := range lits {
		if bytes.Equal(lit, matched) {
			return i
		}
	}
	return -1
}
