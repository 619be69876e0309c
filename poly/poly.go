// Package poly implements dense-coefficient polynomial arithmetic over
// real (float64) coefficients. Coefficients are ordered ascending by
// degree: index 0 is the constant term. No trailing-zero trimming is ever
// performed; callers must not rely on a trimmed representation.
package poly

import (
	"fmt"
	"math"

	"r1csqap/coreerr"
)

// Poly is a dense coefficient vector, ascending by degree.
type Poly []float64

// Add returns a+b. len(result) = max(len(a), len(b)).
func Add(a, b Poly) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	c := make(Poly, n)
	for i := 0; i < n; i++ {
		c[i] = at(a, i) + at(b, i)
	}
	return c
}

// Sub returns a-b. len(result) = max(len(a), len(b)).
func Sub(a, b Poly) Poly {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	c := make(Poly, n)
	for i := 0; i < n; i++ {
		c[i] = at(a, i) - at(b, i)
	}
	return c
}

// Mul returns a*b. len(result) = len(a)+len(b)-1.
func Mul(a, b Poly) Poly {
	if len(a) == 0 || len(b) == 0 {
		return Poly{0}
	}
	c := make(Poly, len(a)+len(b)-1)
	for i, av := range a {
		if av == 0 {
			continue
		}
		for j, bv := range b {
			c[i+j] += av * bv
		}
	}
	return c
}

// Div performs long division of dense polynomials, returning (quotient,
// remainder). Precondition: len(a) >= len(b). Returns
// coreerr.ErrDivisionByZeroPoly when the precondition fails or the
// divisor's leading coefficient is (within tolerance) zero.
func Div(a, b Poly) (q, r Poly, err error) {
	if len(a) < len(b) {
		return nil, nil, fmt.Errorf("div: len(a)=%d < len(b)=%d: %w", len(a), len(b), coreerr.ErrDivisionByZeroPoly)
	}
	if len(b) == 0 || math.Abs(b[len(b)-1]) < 1e-12 {
		return nil, nil, fmt.Errorf("div: divisor leading coefficient is zero: %w", coreerr.ErrDivisionByZeroPoly)
	}

	q = make(Poly, len(a)-len(b)+1)
	rem := append(Poly(nil), a...)

	for len(rem) >= len(b) {
		f := rem[len(rem)-1] / b[len(b)-1]
		pos := len(rem) - len(b)
		q[pos] = f

		shift := make(Poly, pos+len(b))
		copy(shift[pos:], b)
		for i := range shift {
			shift[i] *= f
		}

		rem = Sub(rem, shift)
		rem = rem[:len(rem)-1]
	}
	return q, rem, nil
}

// Eval evaluates p at x via Horner's method.
func Eval(p Poly, x float64) float64 {
	var acc float64
	for i := len(p) - 1; i >= 0; i-- {
		acc = acc*x + p[i]
	}
	return acc
}

func at(p Poly, i int) float64 {
	if i < len(p) {
		return p[i]
	}
	return 0
}
