package arith

import (
	"math"

	"golang.org/x/exp/constraints"

	errs "github.com/chaisql/arith/internal/errors"
)

// FloorDivInt returns the largest integer less than or equal to a / b.
// It fails if b is zero, whatever the value of a.
func FloorDivInt[T constraints.Signed](a, b T) (T, error) {
	if b == 0 {
		return 0, errs.NewDivisionByZero("division by zero")
	}

	q := a / b
	// Go truncates toward zero: step down when the exact quotient is negative
	// and not a whole number.
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}

	return q, nil
}

// FloorDivFloat returns floor(a / b) computed with IEEE-754 arithmetic.
// A zero divisor yields +Inf, -Inf or NaN depending on the sign of a.
func FloorDivFloat[T constraints.Float](a, b T) T {
	return T(math.Floor(float64(a / b)))
}
