package seqregex

// IsMatchAt reports whether p matches starting exactly at pos.
func IsMatchAt[E, R any](p Pattern[E, R], input []E, pos int) bool {
	return any1(p.forward(input, pos))
}

// IsMatchUpTo reports whether p matches ending exactly at pos (i.e.
// some window of input that ends at pos is a match of p read backward).
func IsMatchUpTo[E, R any](p Pattern[E, R], input []E, pos int) bool {
	return any1(p.backward(input, pos))
}

// IsMatch reports whether p matches anywhere in input at or after
// startAt: an unanchored forward search trying every start position in
// order, starting from startAt.
func IsMatch[E, R any](p Pattern[E, R], input []E, startAt int) bool {
	for pos := startAt; pos <= len(input); pos++ {
		if IsMatchAt(p, input, pos) {
			return true
		}
	}
	return false
}

// IsMatchReverse reports whether p matches anywhere in input, searched
// as an unanchored backward scan: every end position, from endAt back
// to the start of input, is tried in turn. endAt < 0 means len(input).
func IsMatchReverse[E, R any](p Pattern[E, R], input []E, endAt int) bool {
	end := (MatchConfig{EndAt: endAt}).resolveEndAt(len(input))
	for pos := end; pos >= 0; pos-- {
		if IsMatchUpTo(p, input, pos) {
			return true
		}
	}
	return false
}

// IsMatchExact reports whether p matches the window input[i:j] in
// full, with nothing left over on either side. The check strips the
// window out of input and retests p against that slice alone, rather
// than merely checking for a token of length j-i among p's matches
// starting at i over the whole input — a sub-pattern that inspects
// positions beyond j (an End assertion, a look-ahead) could otherwise
// report a spurious exact match that would not hold were input
// actually truncated at j.
func IsMatchExact[E, R any](p Pattern[E, R], input []E, i, j int) bool {
	if i < 0 || j < i || j > len(input) {
		return false
	}
	window := input[i:j]
	for t := range p.forward(window, 0) {
		if t.Len == len(window) {
			return true
		}
	}
	return false
}
