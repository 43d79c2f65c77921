package seqregex

import "github.com/coregx/seqregex/token"

// MatchExact reports whether p matches the window input[i:j] in full
// and, if so, returns the Match for that window (the first such token
// in priority order). As with IsMatchExact, the check strips the
// window out of input and retests p against that slice alone, to
// exclude spurious matches that depend on content beyond j.
func MatchExact[E, R any](p Pattern[E, R], input []E, i, j int) (Match[E, R], bool) {
	if i < 0 || j < i || j > len(input) {
		return Match[E, R]{}, false
	}
	window := input[i:j]
	for t := range p.forward(window, 0) {
		if t.Len == len(window) {
			return newMatch(input, i, t.Len, t.Value), true
		}
	}
	return Match[E, R]{}, false
}

// RawMatchExact is MatchExact without the Match wrapper: p's result
// value if it matches the window input[i:j] in full, under the same
// strip-and-retest rule as MatchExact and IsMatchExact.
func RawMatchExact[E, R any](p Pattern[E, R], input []E, i, j int) (R, bool) {
	var zero R
	if i < 0 || j < i || j > len(input) {
		return zero, false
	}
	window := input[i:j]
	for t := range p.forward(window, 0) {
		if t.Len == len(window) {
			return t.Value, true
		}
	}
	return zero, false
}

// RawMatchAt is the anchored counterpart of Match1, without the Match
// wrapper: it does not scan, but returns p's raw highest-priority token
// starting exactly at pos, for callers that
// only need the token's length and result and want to avoid building
// a Match (and its implicit slice of input).
func RawMatchAt[E, R any](p Pattern[E, R], input []E, pos int) (token.Token[R], bool) {
	return first(p.forward(input, pos))
}

// RawMatchUpTo is RawMatchAt's backward counterpart: p's raw
// highest-priority token ending exactly at pos.
func RawMatchUpTo[E, R any](p Pattern[E, R], input []E, pos int) (token.Token[R], bool) {
	return first(p.backward(input, pos))
}
