package seqregex

import (
	"reflect"
	"testing"
	"time"

	"github.com/coregx/seqregex/token"
)

func TestRepeatRangeValidation(t *testing.T) {
	p := Any[byte]()
	if _, err := p.RepeatRange(-1, 3, true); err == nil {
		t.Error("negative min: want error")
	}
	if _, err := p.RepeatRange(3, 1, true); err == nil {
		t.Error("max < min: want error")
	}
	if _, err := p.Times(-1); err == nil {
		t.Error("negative Times: want error")
	}
}

func TestOptionalLazyVsGreedy(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a := MustLiteral[byte]('a', cmp)

	lazy := a.Optional()
	tok, _ := first(lazy.forward([]byte("a"), 0))
	if tok.Len != 0 {
		t.Errorf("lazy Optional should prefer zero repetitions: got len %d", tok.Len)
	}

	greedy := a.OptionalGreedy()
	tok, _ = first(greedy.forward([]byte("a"), 0))
	if tok.Len != 1 {
		t.Errorf("greedy Optional should prefer one repetition: got len %d", tok.Len)
	}
}

func TestRepeatGreedyMatchesMaximal(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a := MustLiteral[byte]('a', cmp)
	p := a.RepeatGreedy()

	tok, ok := first(p.forward([]byte("aaab"), 0))
	if !ok || tok.Len != 3 {
		t.Fatalf("got %v %v, want len 3", tok, ok)
	}
}

func TestRepeatLazyMatchesMinimal(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a := MustLiteral[byte]('a', cmp)
	p := a.Repeat()

	tok, ok := first(p.forward([]byte("aaab"), 0))
	if !ok || tok.Len != 0 {
		t.Fatalf("got %v %v, want len 0", tok, ok)
	}
}

func TestRepeatMinRequiresMinimum(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a := MustLiteral[byte]('a', cmp)
	p, err := a.RepeatMinGreedy(2)
	if err != nil {
		t.Fatal(err)
	}
	if any1(p.forward([]byte("a"), 0)) {
		t.Error("RepeatMinGreedy(2) should not match a single 'a'")
	}
	tok, ok := first(p.forward([]byte("aaa"), 0))
	if !ok || tok.Len != 3 {
		t.Fatalf("got %v %v, want len 3", tok, ok)
	}
}

func TestTimes(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a := MustLiteral[byte]('a', cmp)
	p, err := a.Times(3)
	if err != nil {
		t.Fatal(err)
	}
	if any1(p.forward([]byte("aa"), 0)) {
		t.Error("Times(3) should not match 'aa'")
	}
	tok, ok := first(p.forward([]byte("aaaa"), 0))
	if !ok || tok.Len != 3 {
		t.Fatalf("got %v %v, want len 3", tok, ok)
	}
}

func TestRepeatWithSeparator(t *testing.T) {
	cmp := DefaultComparer[byte]()
	item := MustLiteral[byte]('a', cmp)
	sep := MustLiteral[byte](',', cmp)
	p := item.RepeatWithSeparator(sep, true)

	tok, ok := first(p.forward([]byte("a,a,a;"), 0))
	if !ok || tok.Len != 5 {
		t.Fatalf("got %v %v, want len 5", tok, ok)
	}
}

// elemByte is a Pattern[byte, byte] matching a single element, whose
// result is that element's own value.
func elemByte() Pattern[byte, byte] {
	return Process(Any[byte](), func(m Match[byte, token.Void]) byte { return m.MatchSlice()[0] })
}

func TestRepeatCollectForwardOrder(t *testing.T) {
	p, err := RepeatCollect(elemByte(), 0, 5, true)
	if err != nil {
		t.Fatal(err)
	}

	input := []byte("12345")
	tok, ok := first(p.forward(input, 0))
	if !ok {
		t.Fatal("expected a match")
	}
	want := []byte{'1', '2', '3', '4', '5'}
	if tok.Len != 5 || !reflect.DeepEqual([]byte(tok.Value), want) {
		t.Errorf("got len=%d value=%v, want len=5 value=%v", tok.Len, tok.Value, want)
	}
}

func TestRepeatCollectBackwardResultOrder(t *testing.T) {
	p, err := RepeatCollect(elemByte(), 0, 5, true)
	if err != nil {
		t.Fatal(err)
	}

	input := []byte("12345")
	tok, ok := first(p.backward(input, len(input)))
	if !ok {
		t.Fatal("expected a backward match")
	}
	want := []byte{'1', '2', '3', '4', '5'}
	if !reflect.DeepEqual([]byte(tok.Value), want) {
		t.Errorf("backward RepeatCollect result order = %v, want %v (source order)", tok.Value, want)
	}
}

// TestRepeatZeroWidthGuard checks that repeating a pattern that can
// match zero-width (Any().Optional()) terminates instead of recursing
// forever at a position it makes no progress from.
func TestRepeatZeroWidthGuard(t *testing.T) {
	nullable := Any[byte]().Optional()
	p := nullable.RepeatGreedy()

	done := make(chan struct{})
	go func() {
		first(p.forward([]byte("ab"), 0))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RepeatGreedy over a nullable pattern did not terminate")
	}
}
