// Package r1cs lowers flatcode into a Rank-1 Constraint System and
// witnesses it against concrete input values.
package r1cs

import (
	"fmt"

	"r1csqap/coreerr"
	"r1csqap/flatcode"
)

// Matrix is a row-major matrix of real coefficients; row i corresponds
// to flatcode operation i, columns follow the placement vector.
type Matrix [][]float64

// R1CS holds the three coefficient matrices and the placement they were
// built against.
type R1CS struct {
	A, B, C   Matrix
	Placement []string
}

// Compile lowers inputs+flatcode into an R1CS. Every identifier read on
// the right-hand side must already be "used" (an input or a previously
// assigned target); violators fail with coreerr.ErrUseBeforeSet.
func Compile(inputs []string, code flatcode.Flatcode) (R1CS, error) {
	placement := flatcode.Placement(inputs, code)
	idx := indexOf(placement)

	used := make(map[string]bool, len(inputs)+len(code))
	for _, name := range inputs {
		used[name] = true
	}

	n := len(placement)
	out := R1CS{
		A:         make(Matrix, 0, len(code)),
		B:         make(Matrix, 0, len(code)),
		C:         make(Matrix, 0, len(code)),
		Placement: placement,
	}

	for _, op := range code {
		t, ok := idx[op.Target]
		if !ok {
			return R1CS{}, fmt.Errorf("target %q: %w", op.Target, coreerr.ErrOperationTargetNotFound)
		}

		a := make([]float64, n)
		b := make([]float64, n)
		c := make([]float64, n)

		switch op.Operator {
		case flatcode.OpSet:
			a[t] += 1
			if err := insertVar(a, idx, op.Left, used, true); err != nil {
				return R1CS{}, err
			}
			b[0] = 1
		case flatcode.OpPlus:
			c[t] = 1
			if err := insertVar(a, idx, op.Left, used, false); err != nil {
				return R1CS{}, err
			}
			if err := insertVar(a, idx, op.Right, used, false); err != nil {
				return R1CS{}, err
			}
			b[0] = 1
		case flatcode.OpMinus:
			c[t] = 1
			if err := insertVar(a, idx, op.Left, used, false); err != nil {
				return R1CS{}, err
			}
			if err := insertVar(a, idx, op.Right, used, true); err != nil {
				return R1CS{}, err
			}
			b[0] = 1
		case flatcode.OpMultiply:
			c[t] = 1
			if err := insertVar(a, idx, op.Left, used, false); err != nil {
				return R1CS{}, err
			}
			if err := insertVar(b, idx, op.Right, used, false); err != nil {
				return R1CS{}, err
			}
		case flatcode.OpDivide:
			a[t] = 1
			if err := insertVar(c, idx, op.Left, used, false); err != nil {
				return R1CS{}, err
			}
			if err := insertVar(b, idx, op.Right, used, false); err != nil {
				return R1CS{}, err
			}
		default:
			return R1CS{}, fmt.Errorf("operator %v: %w", op.Operator, coreerr.ErrUnknownOperator)
		}

		out.A = append(out.A, a)
		out.B = append(out.B, b)
		out.C = append(out.C, c)

		used[op.Target] = true
	}

	return out, nil
}

// insertVar places operand into row, flipping its sign when reverse is
// set. Identifiers that are not yet "used" fail with ErrUseBeforeSet.
func insertVar(row []float64, idx map[string]int, operand flatcode.Operand, used map[string]bool, reverse bool) error {
	sign := 1.0
	if reverse {
		sign = -1.0
	}
	switch operand.Kind {
	case flatcode.KindIdentifier:
		if !used[operand.Name] {
			return fmt.Errorf("identifier %q: %w", operand.Name, coreerr.ErrUseBeforeSet)
		}
		i, ok := idx[operand.Name]
		if !ok {
			return fmt.Errorf("identifier %q: %w", operand.Name, coreerr.ErrOperationTargetNotFound)
		}
		row[i] += sign
	case flatcode.KindNumber:
		row[0] += sign * operand.Value
	}
	return nil
}

// Assign computes the witness vector: the constant 1, the input values,
// and every intermediate/target value, in placement order.
func Assign(inputs []string, inputVars []float64, code flatcode.Flatcode) ([]float64, error) {
	if len(inputVars) != len(inputs) {
		return nil, fmt.Errorf("got %d input_vars, want %d: %w", len(inputVars), len(inputs), coreerr.ErrArityMismatch)
	}

	placement := flatcode.Placement(inputs, code)
	idx := indexOf(placement)

	assignment := make([]float64, len(placement))
	assignment[0] = 1
	for i, name := range inputs {
		assignment[idx[name]] = inputVars[i]
	}

	grab := func(op flatcode.Operand) (float64, error) {
		if op.Kind == flatcode.KindNumber {
			return op.Value, nil
		}
		i, ok := idx[op.Name]
		if !ok {
			return 0, fmt.Errorf("identifier %q: %w", op.Name, coreerr.ErrOperationTargetNotFound)
		}
		return assignment[i], nil
	}

	for _, op := range code {
		t, ok := idx[op.Target]
		if !ok {
			return nil, fmt.Errorf("target %q: %w", op.Target, coreerr.ErrOperationTargetNotFound)
		}

		l, err := grab(op.Left)
		if err != nil {
			return nil, err
		}

		var v float64
		switch op.Operator {
		case flatcode.OpSet:
			v = l
		case flatcode.OpPlus, flatcode.OpMinus, flatcode.OpMultiply, flatcode.OpDivide:
			r, err := grab(op.Right)
			if err != nil {
				return nil, err
			}
			switch op.Operator {
			case flatcode.OpPlus:
				v = l + r
			case flatcode.OpMinus:
				v = l - r
			case flatcode.OpMultiply:
				v = l * r
			case flatcode.OpDivide:
				v = l / r
			}
		default:
			return nil, fmt.Errorf("operator %v: %w", op.Operator, coreerr.ErrUnknownOperator)
		}

		assignment[t] = v
	}

	return assignment, nil
}

func indexOf(placement []string) map[string]int {
	idx := make(map[string]int, len(placement))
	for i, name := range placement {
		idx[name] = i
	}
	return idx
}
