package seqregex

import (
	"testing"

	"github.com/coregx/seqregex/token"
)

func TestThen(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a := MustLiteral[byte]('a', cmp)
	b := MustLiteral[byte]('b', cmp)
	p := Then(a, b, func(_, _ token.Void) int { return 42 })

	tok, ok := first(p.forward([]byte("ab"), 0))
	if !ok || tok.Len != 2 || tok.Value != 42 {
		t.Fatalf("forward: got %v %v", tok, ok)
	}
	if any1(p.forward([]byte("ax"), 0)) {
		t.Error("should not match 'ax'")
	}

	tok, ok = first(p.backward([]byte("ab"), 2))
	if !ok || tok.Len != -2 {
		t.Fatalf("backward: got %v %v", tok, ok)
	}
}

func TestThenLeftRight(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a, _ := Literal[byte]('a', cmp)
	b, _ := Literal[byte]('b', cmp)

	left := ThenLeft(ProcessValue(a, func(token.Void) int { return 1 }), b)
	tok, ok := first(left.forward([]byte("ab"), 0))
	if !ok || tok.Value != 1 || tok.Len != 2 {
		t.Fatalf("ThenLeft: got %v %v", tok, ok)
	}

	right := ThenRight(a, ProcessValue(b, func(token.Void) int { return 2 }))
	tok, ok = first(right.forward([]byte("ab"), 0))
	if !ok || tok.Value != 2 || tok.Len != 2 {
		t.Fatalf("ThenRight: got %v %v", tok, ok)
	}
}

func TestThenDiscard(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a := MustLiteral[byte]('a', cmp)
	b := MustLiteral[byte]('b', cmp)
	p := a.ThenDiscard(b)
	tok, ok := first(p.forward([]byte("ab"), 0))
	if !ok || tok.Len != 2 {
		t.Fatalf("got %v %v", tok, ok)
	}
}

func TestThenBoth(t *testing.T) {
	cmp := DefaultComparer[byte]()
	a, _ := Literal[byte]('a', cmp)
	b, _ := Literal[byte]('b', cmp)
	left := ProcessValue(a, func(token.Void) int { return 1 })
	right := ProcessValue(b, func(token.Void) string { return "x" })

	p := ThenBoth(left, right)
	tok, ok := first(p.forward([]byte("ab"), 0))
	if !ok || tok.Len != 2 {
		t.Fatalf("ThenBoth: got %v %v", tok, ok)
	}
	if tok.Value.First != 1 || tok.Value.Second != "x" {
		t.Errorf("ThenBoth result = %+v, want {First:1 Second:x}", tok.Value)
	}
}
