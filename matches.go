package seqregex

// Match1 finds the first forward match of p in input at or after
// cfg.StartAt, trying each start position in turn and, within a
// position, taking p's highest-priority token. Returns false if no
// position up to cfg.EndAt yields a match.
func Match1[E, R any](p Pattern[E, R], input []E, cfg MatchConfig) (Match[E, R], bool) {
	end := cfg.resolveEndAt(len(input))
	for pos := cfg.StartAt; pos <= end; pos++ {
		if t, ok := first(p.forward(input, pos)); ok {
			return newMatch(input, pos, t.Len, t.Value), true
		}
	}
	return Match[E, R]{}, false
}

// Matches finds every non-overlapping forward match of p in input,
// starting from cfg.StartAt, up to cfg.MaxMatches (unbounded if
// negative). After a match, the scan resumes at the match's end, or
// one position further for a zero-length match, so an always-matching
// pattern cannot stall the scan.
func Matches[E, R any](p Pattern[E, R], input []E, cfg MatchConfig) []Match[E, R] {
	end := cfg.resolveEndAt(len(input))
	var out []Match[E, R]
	pos := cfg.StartAt
	for pos <= end {
		if cfg.MaxMatches >= 0 && len(out) >= cfg.MaxMatches {
			break
		}
		t, ok := first(p.forward(input, pos))
		if !ok {
			pos++
			continue
		}
		m := newMatch(input, pos, t.Len, t.Value)
		out = append(out, m)
		if t.Len > 0 {
			pos += t.Len
		} else {
			pos++
		}
	}
	return out
}

// MatchReverse finds the first backward match of p in input at or
// before cfg.EndAt (the scan's end position, defaulting to len(input)),
// trying each position in decreasing order down to cfg.StartAt.
func MatchReverse[E, R any](p Pattern[E, R], input []E, cfg MatchConfig) (Match[E, R], bool) {
	end := cfg.resolveEndAt(len(input))
	for pos := end; pos >= cfg.StartAt; pos-- {
		if t, ok := first(p.backward(input, pos)); ok {
			return newMatch(input, pos+t.Len, t.Len, t.Value), true
		}
	}
	return Match[E, R]{}, false
}

// MatchesReverse finds every non-overlapping backward match of p in
// input, scanning end positions from cfg.EndAt down to cfg.StartAt, up
// to cfg.MaxMatches.
func MatchesReverse[E, R any](p Pattern[E, R], input []E, cfg MatchConfig) []Match[E, R] {
	start := cfg.StartAt
	end := cfg.resolveEndAt(len(input))
	var out []Match[E, R]
	pos := end
	for pos >= start {
		if cfg.MaxMatches >= 0 && len(out) >= cfg.MaxMatches {
			break
		}
		t, ok := first(p.backward(input, pos))
		if !ok {
			pos--
			continue
		}
		m := newMatch(input, pos+t.Len, t.Len, t.Value)
		out = append(out, m)
		if t.Len < 0 {
			pos += t.Len
		} else {
			pos--
		}
	}
	return out
}

// RawMatch1 is Match1 without the Match wrapper: it returns only p's
// result value for the first forward match at or after cfg.StartAt,
// for callers that don't need the window's position or length.
func RawMatch1[E, R any](p Pattern[E, R], input []E, cfg MatchConfig) (R, bool) {
	end := cfg.resolveEndAt(len(input))
	for pos := cfg.StartAt; pos <= end; pos++ {
		if t, ok := first(p.forward(input, pos)); ok {
			return t.Value, true
		}
	}
	var zero R
	return zero, false
}

// RawMatches is Matches without the Match wrapper: the result values of
// every non-overlapping forward match, in scan order, for callers that
// only care about the []R shape (e.g. comparing it against
// RawMatchesReverse's for the same window).
func RawMatches[E, R any](p Pattern[E, R], input []E, cfg MatchConfig) []R {
	end := cfg.resolveEndAt(len(input))
	var out []R
	pos := cfg.StartAt
	for pos <= end {
		if cfg.MaxMatches >= 0 && len(out) >= cfg.MaxMatches {
			break
		}
		t, ok := first(p.forward(input, pos))
		if !ok {
			pos++
			continue
		}
		out = append(out, t.Value)
		if t.Len > 0 {
			pos += t.Len
		} else {
			pos++
		}
	}
	return out
}

// RawMatchReverse is MatchReverse without the Match wrapper.
func RawMatchReverse[E, R any](p Pattern[E, R], input []E, cfg MatchConfig) (R, bool) {
	end := cfg.resolveEndAt(len(input))
	for pos := end; pos >= cfg.StartAt; pos-- {
		if t, ok := first(p.backward(input, pos)); ok {
			return t.Value, true
		}
	}
	var zero R
	return zero, false
}

// RawMatchesReverse is MatchesReverse without the Match wrapper: the
// result values of every non-overlapping backward match, in scan order
// (end positions decreasing), for the same []R-shape comparison
// RawMatches supports.
func RawMatchesReverse[E, R any](p Pattern[E, R], input []E, cfg MatchConfig) []R {
	start := cfg.StartAt
	end := cfg.resolveEndAt(len(input))
	var out []R
	pos := end
	for pos >= start {
		if cfg.MaxMatches >= 0 && len(out) >= cfg.MaxMatches {
			break
		}
		t, ok := first(p.backward(input, pos))
		if !ok {
			pos--
			continue
		}
		out = append(out, t.Value)
		if t.Len < 0 {
			pos += t.Len
		} else {
			pos--
		}
	}
	return out
}
