// Package fieldpoly restates the QAP interpolation algorithm (singleton
// accumulation, as in package qap) over a ring-backed Z_q element
// instead of float64, illustrating the generalized numeric substrate
// spec.md section 9 calls for in a production rewrite. It shares no code
// with package qap — only the algorithm shape — and is not on the
// default real-valued pipeline; cmd/fieldcheck exercises it directly.
//
// Polynomials are represented coefficient-domain over a
// github.com/tuneinsight/lattigo/v4/ring.Ring. Multiplication goes
// through the ring's NTT, so it is a negacyclic convolution (mod
// X^N+1): callers must size the ring degree N comfortably larger than
// any polynomial degree they produce, or high-order terms wrap around.
package fieldpoly

import (
	"fmt"
	"math/big"

	"github.com/tuneinsight/lattigo/v4/ring"

	"r1csqap/coreerr"
)

// NewRing constructs the backing ring for degree-n polynomials modulo q.
// n must be a power of two and q must be NTT-friendly for n (q = 1 mod 2n).
func NewRing(n int, q uint64) (*ring.Ring, error) {
	return ring.NewRing(n, []uint64{q})
}

// Poly is a coefficient-domain polynomial over Z_q.
type Poly struct {
	ringQ *ring.Ring
	raw   *ring.Poly
}

// Zero returns the additive identity.
func Zero(r *ring.Ring) Poly {
	return Poly{ringQ: r, raw: r.NewPoly()}
}

// FromCoeffs builds a polynomial from ascending-degree coefficients,
// reduced mod q. Coefficients beyond the ring's degree are dropped.
func FromCoeffs(r *ring.Ring, coeffs []uint64) Poly {
	p := r.NewPoly()
	q := r.Modulus[0]
	for i, c := range coeffs {
		if i >= len(p.Coeffs[0]) {
			break
		}
		p.Coeffs[0][i] = c % q
	}
	return Poly{ringQ: r, raw: p}
}

// Coeffs returns the coefficient-domain values, ascending degree.
func (p Poly) Coeffs() []uint64 {
	out := make([]uint64, len(p.raw.Coeffs[0]))
	copy(out, p.raw.Coeffs[0])
	return out
}

// Add returns p+q mod the ring's modulus.
func (p Poly) Add(other Poly) Poly {
	out := p.ringQ.NewPoly()
	p.ringQ.Add(p.raw, other.raw, out)
	return Poly{ringQ: p.ringQ, raw: out}
}

// Sub returns p-q mod the ring's modulus.
func (p Poly) Sub(other Poly) Poly {
	out := p.ringQ.NewPoly()
	p.ringQ.Sub(p.raw, other.raw, out)
	return Poly{ringQ: p.ringQ, raw: out}
}

// Mul returns p*q mod the ring's modulus and mod X^N+1 (see package doc).
func (p Poly) Mul(other Poly) Poly {
	a := p.ringQ.NewPoly()
	b := p.ringQ.NewPoly()
	p.ringQ.NTT(p.raw, a)
	p.ringQ.NTT(other.raw, b)
	prod := p.ringQ.NewPoly()
	p.ringQ.MulCoeffs(a, b, prod)
	out := p.ringQ.NewPoly()
	p.ringQ.InvNTT(prod, out)
	return Poly{ringQ: p.ringQ, raw: out}
}

// EvalPoly evaluates coeffs (ascending degree) at x mod q via Horner's
// method.
func EvalPoly(coeffs []uint64, x, q uint64) uint64 {
	if len(coeffs) == 0 {
		return 0
	}
	res := coeffs[len(coeffs)-1] % q
	for i := len(coeffs) - 2; i >= 0; i-- {
		res = modMul(res, x, q)
		res = modAdd(res, coeffs[i]%q, q)
	}
	return res
}

// Eval evaluates p at x in Z_q.
func (p Poly) Eval(x uint64) uint64 {
	return EvalPoly(p.raw.Coeffs[0], x%p.ringQ.Modulus[0], p.ringQ.Modulus[0])
}

// Singleton mirrors qap.singleton over Z_q: a polynomial that is height
// at x = pointLoc and zero at every other sample point in {1..totalPts}.
func Singleton(r *ring.Ring, pointLoc int, height uint64, totalPts int) (Poly, error) {
	q := r.Modulus[0]
	f := uint64(1)
	for i := 1; i <= totalPts; i++ {
		if i == pointLoc {
			continue
		}
		diff := modSub(uint64(pointLoc), uint64(i), q)
		f = modMul(f, diff, q)
	}
	if f == 0 {
		return Poly{}, fmt.Errorf("singleton at point %d: %w", pointLoc, coreerr.ErrDivisionByZeroPoly)
	}
	finv := modInverse(f, q)

	acc := FromCoeffs(r, []uint64{modMul(height, finv, q)})
	for i := 1; i <= totalPts; i++ {
		if i == pointLoc {
			continue
		}
		factor := FromCoeffs(r, []uint64{modSub(0, uint64(i), q), 1})
		acc = acc.Mul(factor)
	}
	return acc, nil
}

func modAdd(a, b, q uint64) uint64 {
	s := a + b
	if s >= q || s < a {
		s -= q
	}
	return s
}

func modSub(a, b, q uint64) uint64 {
	a %= q
	b %= q
	if a >= b {
		return a - b
	}
	return q - (b - a)
}

// modMul computes (a*b) mod q via math/big, routing 64-bit modular
// multiplication through local big.Int values to sidestep overflow.
func modMul(a, b, q uint64) uint64 {
	var x, y, m big.Int
	x.SetUint64(a)
	y.SetUint64(b)
	m.SetUint64(q)
	x.Mul(&x, &y)
	x.Mod(&x, &m)
	return x.Uint64()
}

// modInverse computes a^-1 mod q via Fermat's little theorem; callers
// must only use this with a prime q.
func modInverse(a, q uint64) uint64 {
	return modPow(a, q-2, q)
}

func modPow(base, exp, q uint64) uint64 {
	result := uint64(1) % q
	base %= q
	for exp > 0 {
		if exp&1 == 1 {
			result = modMul(result, base, q)
		}
		base = modMul(base, base, q)
		exp >>= 1
	}
	return result
}
