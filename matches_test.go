package seqregex

import (
	"testing"

	"github.com/coregx/seqregex/token"
)

func TestMatch1(t *testing.T) {
	cmp := DefaultComparer[byte]()
	p := MustLiteral[byte]('a', cmp)
	input := []byte("xxaxx")

	m, ok := Match1(p, input, DefaultMatchConfig())
	if !ok || m.Index() != 2 {
		t.Fatalf("got %v %v, want index 2", m, ok)
	}

	cfg := DefaultMatchConfig()
	cfg.StartAt = 3
	if _, ok := Match1(p, input, cfg); ok {
		t.Error("Match1 starting after the only match should fail")
	}
}

func TestMatches(t *testing.T) {
	cmp := DefaultComparer[byte]()
	p := MustLiteral[byte]('a', cmp)
	input := []byte("aXaXa")

	ms := Matches(p, input, DefaultMatchConfig())
	if len(ms) != 3 {
		t.Fatalf("got %d matches, want 3", len(ms))
	}
	for i, want := range []int{0, 2, 4} {
		if ms[i].Index() != want {
			t.Errorf("match %d: index = %d, want %d", i, ms[i].Index(), want)
		}
	}
}

func TestMatchesMaxMatches(t *testing.T) {
	cmp := DefaultComparer[byte]()
	p := MustLiteral[byte]('a', cmp)
	input := []byte("aaaa")

	cfg := DefaultMatchConfig()
	cfg.MaxMatches = 2
	ms := Matches(p, input, cfg)
	if len(ms) != 2 {
		t.Fatalf("got %d matches, want 2", len(ms))
	}
}

func TestMatchesZeroWidthAdvances(t *testing.T) {
	p := Empty[byte]()
	input := []byte("ab")

	cfg := DefaultMatchConfig()
	cfg.MaxMatches = 10
	ms := Matches(p, input, cfg)
	if len(ms) != 3 {
		t.Fatalf("got %d zero-width matches, want 3 (one per position)", len(ms))
	}
}

func TestMatchReverseAndMatchesReverse(t *testing.T) {
	cmp := DefaultComparer[byte]()
	p := MustLiteral[byte]('a', cmp)
	input := []byte("aXaXa")

	m, ok := MatchReverse(p, input, DefaultMatchConfig())
	if !ok || m.Index() != 4 {
		t.Fatalf("got %v %v, want index 4", m, ok)
	}

	ms := MatchesReverse(p, input, DefaultMatchConfig())
	if len(ms) != 3 {
		t.Fatalf("got %d matches, want 3", len(ms))
	}
	for i, want := range []int{4, 2, 0} {
		if ms[i].Index() != want {
			t.Errorf("match %d: index = %d, want %d", i, ms[i].Index(), want)
		}
	}
}

// TestForwardReverseIndexAgreement checks that scanning forward and
// scanning backward find the same set of matches (as a set), just in
// opposite discovery order.
func TestForwardReverseIndexAgreement(t *testing.T) {
	cmp := DefaultComparer[byte]()
	p := MustLiteral[byte]('a', cmp)
	input := []byte("aXaXXaX")

	fwd := Matches(p, input, DefaultMatchConfig())
	bwd := MatchesReverse(p, input, DefaultMatchConfig())
	if len(fwd) != len(bwd) {
		t.Fatalf("forward found %d matches, backward found %d", len(fwd), len(bwd))
	}
	for i := range fwd {
		j := len(bwd) - 1 - i
		if fwd[i].Index() != bwd[j].Index() {
			t.Errorf("forward[%d].Index()=%d != backward[%d].Index()=%d", i, fwd[i].Index(), j, bwd[j].Index())
		}
	}
}

func TestRawMatch1AndRawMatchReverse(t *testing.T) {
	cmp := DefaultComparer[byte]()
	lit := MustLiteral[byte]('a', cmp)
	p := ProcessValue(lit, func(token.Void) int { return 7 })
	input := []byte("xxaxx")

	v, ok := RawMatch1(p, input, DefaultMatchConfig())
	if !ok || v != 7 {
		t.Fatalf("RawMatch1 = %v %v, want 7 true", v, ok)
	}
	v, ok = RawMatchReverse(p, input, DefaultMatchConfig())
	if !ok || v != 7 {
		t.Fatalf("RawMatchReverse = %v %v, want 7 true", v, ok)
	}
}

// TestRawMatchesAgreeReverse checks that RawMatches and
// RawMatchesReverse report the same []R, in opposite order, for the
// same input: each result here is the match's Index() as seen by
// Process, so a backward match must report the same left edge as the
// forward match of the same window.
func TestRawMatchesAgreeReverse(t *testing.T) {
	cmp := DefaultComparer[byte]()
	lit := MustLiteral[byte]('a', cmp)
	p := Process(lit, func(m Match[byte, token.Void]) int { return m.Index() })
	input := []byte("aXaXXaX")

	fwd := RawMatches(p, input, DefaultMatchConfig())
	bwd := RawMatchesReverse(p, input, DefaultMatchConfig())
	if len(fwd) != len(bwd) {
		t.Fatalf("RawMatches found %d, RawMatchesReverse found %d", len(fwd), len(bwd))
	}
	for i := range fwd {
		j := len(bwd) - 1 - i
		if fwd[i] != bwd[j] {
			t.Errorf("RawMatches[%d]=%d != RawMatchesReverse[%d]=%d", i, fwd[i], j, bwd[j])
		}
	}
}
