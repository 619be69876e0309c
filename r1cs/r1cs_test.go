package r1cs

import (
	"math"
	"testing"

	"r1csqap/flatcode"
)

func dot(row, a []float64) float64 {
	var s float64
	for i := range row {
		s += row[i] * a[i]
	}
	return s
}

func checkRows(t *testing.T, r R1CS, a []float64) {
	t.Helper()
	for i := range r.A {
		lhs := dot(r.A[i], a) * dot(r.B[i], a)
		rhs := dot(r.C[i], a)
		if math.Abs(lhs-rhs) > 1e-9 {
			t.Fatalf("row %d unsatisfied: (A.a)(B.a)=%v C.a=%v", i, lhs, rhs)
		}
	}
}

// Scenario A: pure multiply, y = x * x.
func TestScenarioAPureMultiply(t *testing.T) {
	inputs := []string{"x"}
	code := flatcode.Flatcode{
		{Target: "y", Operator: flatcode.OpMultiply, Left: flatcode.Identifier("x"), Right: flatcode.Identifier("x")},
	}
	r, err := Compile(inputs, code)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	wantPlacement := []string{"~one", "x", "~out", "y"}
	for i, name := range wantPlacement {
		if r.Placement[i] != name {
			t.Fatalf("placement[%d]=%q want %q", i, r.Placement[i], name)
		}
	}
	if got, want := r.A[0], []float64{0, 1, 0, 0}; !floatsEqual(got, want) {
		t.Fatalf("A row mismatch: got %v want %v", got, want)
	}
	if got, want := r.B[0], []float64{0, 1, 0, 0}; !floatsEqual(got, want) {
		t.Fatalf("B row mismatch: got %v want %v", got, want)
	}
	if got, want := r.C[0], []float64{0, 0, 0, 1}; !floatsEqual(got, want) {
		t.Fatalf("C row mismatch: got %v want %v", got, want)
	}

	a, err := Assign(inputs, []float64{3.0}, code)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	want := []float64{1.0, 3.0, 0.0, 9.0}
	if !floatsEqual(a, want) {
		t.Fatalf("assignment mismatch: got %v want %v", a, want)
	}
	checkRows(t, r, a)
}

// Scenario B: additive constant, t = 2 + 3.
func TestScenarioBAdditiveConstant(t *testing.T) {
	code := flatcode.Flatcode{
		{Target: "t", Operator: flatcode.OpPlus, Left: flatcode.Number(2), Right: flatcode.Number(3)},
	}
	r, err := Compile(nil, code)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if got, want := r.A[0], []float64{5, 0, 0}; !floatsEqual(got, want) {
		t.Fatalf("A row mismatch: got %v want %v", got, want)
	}
	if got, want := r.B[0], []float64{1, 0, 0}; !floatsEqual(got, want) {
		t.Fatalf("B row mismatch: got %v want %v", got, want)
	}
	if got, want := r.C[0], []float64{0, 0, 1}; !floatsEqual(got, want) {
		t.Fatalf("C row mismatch: got %v want %v", got, want)
	}
	a, err := Assign(nil, nil, code)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if want := []float64{1.0, 0.0, 5.0}; !floatsEqual(a, want) {
		t.Fatalf("assignment mismatch: got %v want %v", a, want)
	}
	checkRows(t, r, a)
}

// Scenario C: set/copy, b = set a.
func TestScenarioCSetCopy(t *testing.T) {
	inputs := []string{"a"}
	code := flatcode.Flatcode{
		{Target: "b", Operator: flatcode.OpSet, Left: flatcode.Identifier("a")},
	}
	r, err := Compile(inputs, code)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	wantA := []float64{0, -1, 0, 1}
	if !floatsEqual(r.A[0], wantA) {
		t.Fatalf("A row mismatch: got %v want %v", r.A[0], wantA)
	}
	if want := []float64{1, 0, 0, 0}; !floatsEqual(r.B[0], want) {
		t.Fatalf("B row mismatch: got %v want %v", r.B[0], want)
	}
	for _, v := range r.C[0] {
		if v != 0 {
			t.Fatalf("C row must be zero, got %v", r.C[0])
		}
	}
	a, err := Assign(inputs, []float64{7.0}, code)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if want := []float64{1.0, 7.0, 0.0, 7.0}; !floatsEqual(a, want) {
		t.Fatalf("assignment mismatch: got %v want %v", a, want)
	}
	checkRows(t, r, a)
}

// Scenario D: division, r = p / q.
func TestScenarioDDivision(t *testing.T) {
	inputs := []string{"p", "q"}
	code := flatcode.Flatcode{
		{Target: "r", Operator: flatcode.OpDivide, Left: flatcode.Identifier("p"), Right: flatcode.Identifier("q")},
	}
	rc, err := Compile(inputs, code)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	a, err := Assign(inputs, []float64{12.0, 4.0}, code)
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	checkRows(t, rc, a)
	rIdx := 4 // ~one p q ~out r
	if a[rIdx] != 3.0 {
		t.Fatalf("r = %v, want 3.0", a[rIdx])
	}
}

func TestUseBeforeSet(t *testing.T) {
	code := flatcode.Flatcode{
		{Target: "y", Operator: flatcode.OpPlus, Left: flatcode.Identifier("x"), Right: flatcode.Number(1)},
	}
	if _, err := Compile(nil, code); err == nil {
		t.Fatalf("expected UseBeforeSet error")
	}
}

func TestArityMismatch(t *testing.T) {
	code := flatcode.Flatcode{
		{Target: "y", Operator: flatcode.OpSet, Left: flatcode.Identifier("x")},
	}
	if _, err := Assign([]string{"x"}, nil, code); err == nil {
		t.Fatalf("expected ArityMismatch error")
	}
}

func floatsEqual(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if math.Abs(a[i]-b[i]) > 1e-9 {
			return false
		}
	}
	return true
}
