// Package host is the boundary decoder: it turns the flat
// (operator, target, left, right) tuple stream and a JSON-encoded
// circuit description into the typed flatcode.Flatcode the core
// packages operate on. It is the one place in this repo where
// coreerr.ErrInvalidOperandType and coreerr.ErrUnknownOperator are
// raised from untrusted input, per spec's duck-typed-operand note.
package host

import (
	"encoding/json"
	"fmt"
	"os"

	"r1csqap/coreerr"
	"r1csqap/flatcode"
)

// Circuit is the JSON-facing record read from disk: the declared
// inputs, the flat operator/target/left/right tuple stream, and the
// concrete input values.
type Circuit struct {
	Inputs    []string        `json:"inputs"`
	Flatcode  []any           `json:"flatcode"`
	InputVars []float64       `json:"input_vars"`
}

// LoadFile reads and JSON-decodes a circuit description.
func LoadFile(path string) (Circuit, error) {
	var c Circuit
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode %s: %w", path, err)
	}
	return c, nil
}

// Decode validates and converts a Circuit's flat tuple stream into
// flatcode.Flatcode. Every four consecutive entries in Flatcode encode
// one operation: (operator_text, target_name, left_operand,
// right_operand). Operands must be a real number or a non-empty string;
// anything else fails with coreerr.ErrInvalidOperandType. Operator text
// outside {"+","-","*","/","set"} fails with coreerr.ErrUnknownOperator.
func Decode(c Circuit) ([]string, flatcode.Flatcode, []float64, error) {
	if len(c.Flatcode)%4 != 0 {
		return nil, nil, nil, fmt.Errorf("flatcode stream length %d is not a multiple of 4", len(c.Flatcode))
	}

	code := make(flatcode.Flatcode, 0, len(c.Flatcode)/4)
	for i := 0; i < len(c.Flatcode); i += 4 {
		opText, ok := c.Flatcode[i].(string)
		if !ok {
			return nil, nil, nil, fmt.Errorf("operator at tuple %d: %w", i/4, coreerr.ErrInvalidOperandType)
		}
		op, err := decodeOperator(opText)
		if err != nil {
			return nil, nil, nil, err
		}

		target, ok := c.Flatcode[i+1].(string)
		if !ok || target == "" {
			return nil, nil, nil, fmt.Errorf("target at tuple %d: %w", i/4, coreerr.ErrInvalidOperandType)
		}

		left, err := decodeOperand(c.Flatcode[i+2])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("left operand at tuple %d: %w", i/4, err)
		}
		right, err := decodeOperand(c.Flatcode[i+3])
		if err != nil {
			return nil, nil, nil, fmt.Errorf("right operand at tuple %d: %w", i/4, err)
		}

		code = append(code, flatcode.Operation{
			Target:   target,
			Operator: op,
			Left:     left,
			Right:    right,
		})
	}

	return c.Inputs, code, c.InputVars, nil
}

func decodeOperator(text string) (flatcode.Operator, error) {
	switch text {
	case "+":
		return flatcode.OpPlus, nil
	case "-":
		return flatcode.OpMinus, nil
	case "*":
		return flatcode.OpMultiply, nil
	case "/":
		return flatcode.OpDivide, nil
	case "set":
		return flatcode.OpSet, nil
	default:
		return 0, fmt.Errorf("operator %q: %w", text, coreerr.ErrUnknownOperator)
	}
}

// decodeOperand accepts either a real number or a non-empty string;
// anything else (nil, bool, object, array) fails with
// coreerr.ErrInvalidOperandType.
func decodeOperand(raw any) (flatcode.Operand, error) {
	switch v := raw.(type) {
	case float64:
		return flatcode.Number(v), nil
	case string:
		if v == "" {
			return flatcode.Operand{}, coreerr.ErrInvalidOperandType
		}
		return flatcode.Identifier(v), nil
	default:
		return flatcode.Operand{}, fmt.Errorf("observed kind %T: %w", raw, coreerr.ErrInvalidOperandType)
	}
}
