package fixture

import "testing"

func TestMatricesDeterministic(t *testing.T) {
	a := [][]float64{{1, 0}, {0, 1}}
	b := [][]float64{{1, 0}, {0, 1}}
	c := [][]float64{{0, 1}, {1, 0}}
	assignment := []float64{1, 2}

	d1 := Matrices(a, b, c, assignment)
	d2 := Matrices(a, b, c, assignment)
	if d1 != d2 {
		t.Fatalf("digest not deterministic: %s vs %s", d1, d2)
	}

	other := Matrices(a, b, c, []float64{1, 3})
	if d1 == other {
		t.Fatalf("digest did not change with differing assignment")
	}
}

func TestPolynomialsDeterministic(t *testing.T) {
	a := [][]float64{{1, 2}, {3, 4}}
	z := []float64{-1, 1}
	d1 := Polynomials(a, a, a, z)
	d2 := Polynomials(a, a, a, z)
	if d1 != d2 {
		t.Fatalf("digest not deterministic: %s vs %s", d1, d2)
	}
}
