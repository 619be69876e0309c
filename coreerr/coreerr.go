// Package coreerr holds the sentinel errors shared by poly, r1cs, host
// and fieldpoly. Call sites wrap these with fmt.Errorf("...: %w", ...) to attach
// the offending name or kind; callers compare with errors.Is.
package coreerr

import "errors"

var (
	ErrUnknownOperator        = errors.New("unknown operator")
	ErrInvalidOperandType     = errors.New("invalid operand type")
	ErrOperationTargetNotFound = errors.New("operation target not found")
	ErrUseBeforeSet           = errors.New("identifier used before set")
	ErrArityMismatch          = errors.New("input_vars length does not match inputs length")
	ErrDivisionByZeroPoly     = errors.New("polynomial division by zero divisor")
)
