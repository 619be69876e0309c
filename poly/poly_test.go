package poly

import (
	"math"
	"testing"
)

func almostEqual(a, b Poly) bool {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if math.Abs(at(a, i)-at(b, i)) > 1e-9 {
			return false
		}
	}
	return true
}

func TestAddCommutative(t *testing.T) {
	a := Poly{1, 2, 3}
	b := Poly{4, 5}
	if !almostEqual(Add(a, b), Add(b, a)) {
		t.Fatalf("add is not commutative")
	}
}

func TestMulByZero(t *testing.T) {
	a := Poly{1, 2, 3}
	zero := Poly{0}
	got := Mul(a, zero)
	for _, c := range got {
		if c != 0 {
			t.Fatalf("mul by zero produced nonzero coefficient: %v", got)
		}
	}
}

func TestSubSelfIsZero(t *testing.T) {
	a := Poly{3, -1, 7}
	got := Sub(a, a)
	for _, c := range got {
		if c != 0 {
			t.Fatalf("sub(a,a) not zero: %v", got)
		}
	}
	if len(got) != len(a) {
		t.Fatalf("sub(a,a) length mismatch: got %d want %d", len(got), len(a))
	}
}

func TestDivRoundTrip(t *testing.T) {
	a := Poly{1, 2, 3}
	b := Poly{1, 1}
	prod := Mul(a, b)
	q, r, err := Div(prod, b)
	if err != nil {
		t.Fatalf("div failed: %v", err)
	}
	if !almostEqual(q, a) {
		t.Fatalf("quotient mismatch: got %v want %v", q, a)
	}
	for _, c := range r {
		if math.Abs(c) > 1e-9 {
			t.Fatalf("remainder not zero: %v", r)
		}
	}
}

func TestDivArityError(t *testing.T) {
	_, _, err := Div(Poly{1}, Poly{1, 1})
	if err == nil {
		t.Fatalf("expected error for len(a) < len(b)")
	}
}

func TestDivZeroLeadingCoeff(t *testing.T) {
	_, _, err := Div(Poly{1, 2, 3}, Poly{1, 0})
	if err == nil {
		t.Fatalf("expected error for zero leading coefficient divisor")
	}
}

func TestEval(t *testing.T) {
	p := Poly{1, 2, 3} // 1 + 2x + 3x^2
	got := Eval(p, 2)
	want := 1.0 + 2*2 + 3*4
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("eval mismatch: got %v want %v", got, want)
	}
}
