package arith

import (
	"math"

	"golang.org/x/exp/constraints"

	errs "github.com/chaisql/arith/internal/errors"
)

// FloorModInt returns the remainder of the floor division of a by b.
// The result is zero or has the sign of b.
func FloorModInt[T constraints.Signed](a, b T) (T, error) {
	if b == 0 {
		return 0, errs.NewDivisionByZero("Cannot divide by 0")
	}

	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		r += b
	}

	return r, nil
}

// FloorModFloat returns the remainder of the floor division of a by b.
// A zero divisor yields NaN.
func FloorModFloat[T constraints.Float](a, b T) T {
	x, y := float64(a), float64(b)
	if y == 0 {
		return T(math.NaN())
	}

	r := math.Mod(x, y)
	switch {
	case r == 0:
		r = math.Copysign(0, y)
	case (r < 0) != (y < 0):
		r += y
	}

	return T(r)
}
