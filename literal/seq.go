// Package literal builds patterns over small sets of known-in-advance
// literal sequences, the way a regex engine's prefilter layer handles
// alternations like /foo|bar|baz/ — except here the alternatives are
// generic []E windows, not regex-syntax byte strings, and the payoff is
// a single committed combinator rather than a separate acceleration
// engine.
package literal

import (
	"github.com/coregx/seqregex"
	"github.com/coregx/seqregex/token"
)

// CommonPrefixLen returns the length of the longest common prefix of a
// and b under cmp.
func CommonPrefixLen[E any](a, b []E, cmp func(E, E) bool) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if !cmp(a[i], b[i]) {
			return i
		}
	}
	return n
}

// CommonSuffixLen returns the length of the longest common suffix of a
// and b under cmp.
func CommonSuffixLen[E any](a, b []E, cmp func(E, E) bool) int {
	aLen, bLen := len(a), len(b)
	n := aLen
	if bLen < n {
		n = bLen
	}
	for i := 0; i < n; i++ {
		if !cmp(a[aLen-1-i], b[bLen-1-i]) {
			return i
		}
	}
	return n
}

// OneOfLiterals builds a committed alternation matching whichever of
// lits appears at the current position, longest first. Literals
// sharing a common leading element are grouped so that shared prefix
// is checked once per group rather than once per literal — the same
// minimization idea a prefix-literal prefilter uses to cut down
// redundant comparisons, adapted here to construction-time grouping of
// combinators instead of a runtime automaton.
//
// Matching is committed (seqregex.Pattern.OneOf semantics): once any
// literal in lits has matched at a position, no other alternative — in
// this group or another — is tried there. Returns
// *seqregex.InvalidPatternArgument if cmp is nil.
func OneOfLiterals[E any](lits [][]E, cmp seqregex.Comparer[E]) (seqregex.Pattern[E, token.Void], error) {
	if cmp == nil {
		return seqregex.Pattern[E, token.Void]{}, &seqregex.InvalidPatternArgument{
			Op: "OneOfLiterals", Arg: "cmp", Reason: "comparer must not be nil",
		}
	}
	if len(lits) == 0 {
		return seqregex.Predicate[E](func(E) bool { return false }), nil
	}

	sorted := make([][]E, len(lits))
	copy(sorted, lits)
	sortByLengthDesc(sorted)

	groups := groupByHead(sorted, cmp)

	acc, err := groups[0].build(cmp)
	if err != nil {
		return seqregex.Pattern[E, token.Void]{}, err
	}
	for _, g := range groups[1:] {
		p, err := g.build(cmp)
		if err != nil {
			return seqregex.Pattern[E, token.Void]{}, err
		}
		acc = acc.OneOf(p)
	}
	return acc, nil
}

// headGroup is a set of literals sharing the same first element.
type headGroup[E any] struct {
	head E
	rest [][]E // each literal's tail after head, longest first
}

func (g headGroup[E]) build(cmp seqregex.Comparer[E]) (seqregex.Pattern[E, token.Void], error) {
	headP, err := seqregex.Literal(g.head, cmp)
	if err != nil {
		return seqregex.Pattern[E, token.Void]{}, err
	}
	if len(g.rest) == 1 && len(g.rest[0]) == 0 {
		return headP, nil
	}

	var tailAcc seqregex.Pattern[E, token.Void]
	first := true
	for _, tail := range g.rest {
		var tp seqregex.Pattern[E, token.Void]
		if len(tail) == 0 {
			tp = seqregex.Empty[E]()
		} else {
			var err error
			tp, err = seqregex.LiteralSeq(tail, cmp)
			if err != nil {
				return seqregex.Pattern[E, token.Void]{}, err
			}
		}
		if first {
			tailAcc = tp
			first = false
		} else {
			tailAcc = tailAcc.OneOf(tp)
		}
	}
	return headP.ThenDiscard(tailAcc), nil
}

func groupByHead[E any](lits [][]E, cmp seqregex.Comparer[E]) []headGroup[E] {
	var groups []headGroup[E]
outer:
	for _, lit := range lits {
		if len(lit) == 0 {
			continue
		}
		head := lit[0]
		tail := lit[1:]
		for i := range groups {
			if cmp(groups[i].head, head) {
				groups[i].rest = append(groups[i].rest, tail)
				continue outer
			}
		}
		groups = append(groups, headGroup[E]{head: head, rest: [][]E{tail}})
	}
	return groups
}

func sortByLengthDesc[E any](lits [][]E) {
	for i := 1; i < len(lits); i++ {
		for j := i; j > 0 && len(lits[j]) > len(lits[j-1]); j-- {
			lits[j], lits[j-1] = lits[j-1], lits[j]
		}
	}
}
