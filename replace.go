package seqregex

// Replace finds non-overlapping forward matches of p in input at or
// after startAt, in scan order, and replaces each with
// replacement(match); the prefix before startAt is copied unchanged.
// maxN caps how many replacements are performed; maxN <= 0 means
// unbounded. If fewer than maxN matches actually occur, Replace simply
// stops at the last one found — requesting more replacements than
// exist is never an error.
func Replace[E, R any](p Pattern[E, R], input []E, replacement func(Match[E, R]) []E, startAt, maxN int) []E {
	cfg := DefaultMatchConfig()
	cfg.StartAt = startAt
	if maxN > 0 {
		cfg.MaxMatches = maxN
	}
	ms := Matches(p, input, cfg)

	result := make([]E, 0, len(input))
	result = append(result, input[:startAt]...)
	pos := startAt
	for _, m := range ms {
		if m.Index() > pos {
			result = append(result, input[pos:m.Index()]...)
		}
		result = append(result, replacement(m)...)
		pos = m.Index() + m.Length()
	}
	if pos < len(input) {
		result = append(result, input[pos:]...)
	}
	return result
}

// ReplaceReverse finds non-overlapping matches of p scanning backward
// from endAt (endAt < 0 means len(input)), then rebuilds the output
// left to right with each matched window replaced by
// replacement(match). As with Replace, maxN <= 0 means unbounded, and
// an over-large maxN simply stops at the last match found rather than
// erroring.
func ReplaceReverse[E, R any](p Pattern[E, R], input []E, replacement func(Match[E, R]) []E, endAt, maxN int) []E {
	cfg := DefaultMatchConfig()
	cfg.EndAt = endAt
	if maxN > 0 {
		cfg.MaxMatches = maxN
	}
	ms := MatchesReverse(p, input, cfg)
	for i, j := 0, len(ms)-1; i < j; i, j = i+1, j-1 {
		ms[i], ms[j] = ms[j], ms[i]
	}

	result := make([]E, 0, len(input))
	pos := 0
	for _, m := range ms {
		if m.Index() > pos {
			result = append(result, input[pos:m.Index()]...)
		}
		result = append(result, replacement(m)...)
		pos = m.Index() + m.Length()
	}
	if pos < len(input) {
		result = append(result, input[pos:]...)
	}
	return result
}
