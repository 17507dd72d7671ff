// Package errors declares the error kinds raised by the arithmetic kernels.
// Kinds are attached with errors.Mark, so callers test them with errors.Is
// while the message stays the one users see.
package errors

import (
	"github.com/cockroachdb/errors"
)

var (
	// ErrDivisionByZero is the kind of errors raised by integer division or modulo
	// with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")

	// ErrDomain is the kind of errors raised when an operand is outside
	// the domain of the operator.
	ErrDomain = errors.New("domain error")

	// ErrOverflow is the kind of errors raised when a result is outside the
	// range of its type.
	ErrOverflow = errors.New("overflow")
)

// NewDivisionByZero returns an error of kind ErrDivisionByZero with the given message.
func NewDivisionByZero(msg string) error {
	return errors.Mark(errors.NewWithDepth(1, msg), ErrDivisionByZero)
}

// NewDomainError returns an error of kind ErrDomain with the given message.
func NewDomainError(msg string) error {
	return errors.Mark(errors.NewWithDepth(1, msg), ErrDomain)
}

// NewOverflowError returns an error of kind ErrOverflow, reporting that
// the result does not fit in typeName.
func NewOverflowError(typeName string) error {
	return errors.Mark(errors.NewWithDepthf(1, "Inf is outside the range of representable values of type %s", typeName), ErrOverflow)
}

func IsDivisionByZero(err error) bool {
	return errors.Is(err, ErrDivisionByZero)
}

func IsDomainError(err error) bool {
	return errors.Is(err, ErrDomain)
}

func IsOverflowError(err error) bool {
	return errors.Is(err, ErrOverflow)
}
