package arith

import (
	"math"
	"math/bits"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"

	errs "github.com/chaisql/arith/internal/errors"
)

// PowInt raises base to the power exp using exact integer arithmetic.
// Negative exponents are rejected for every base, including 0 and 1.
// Results outside the range of T are rejected as well.
func PowInt[T constraints.Signed](base, exp T) (T, error) {
	if exp < 0 {
		return 0, errs.NewDomainError("Integers to negative integer powers are not allowed")
	}

	size := bitSize[T]()
	neg := base < 0 && exp&1 == 1

	// the negative range holds one more value than the positive one
	limit := uint64(1)<<(size-1) - 1
	if neg {
		limit++
	}

	m := magnitude(base)
	e := uint64(exp)
	r := uint64(1)
	for {
		if e&1 == 1 {
			hi, lo := bits.Mul64(r, m)
			if hi != 0 || lo > limit {
				return 0, errs.NewOverflowError("int" + strconv.Itoa(size))
			}
			r = lo
		}

		e >>= 1
		if e == 0 {
			break
		}

		// a squared base above the limit is always multiplied into the result
		// later on, since e still has a set bit
		hi, lo := bits.Mul64(m, m)
		if hi != 0 || lo > limit {
			return 0, errs.NewOverflowError("int" + strconv.Itoa(size))
		}
		m = lo
	}

	if neg {
		return T(-int64(r)), nil
	}

	return T(r), nil
}

// PowFloat returns base**exp as defined by math.Pow.
func PowFloat[T constraints.Float](base, exp T) T {
	return T(math.Pow(float64(base), float64(exp)))
}

func bitSize[T constraints.Signed]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// magnitude returns |x| without overflowing on the minimum value of T.
func magnitude[T constraints.Signed](x T) uint64 {
	if x >= 0 {
		return uint64(x)
	}

	return uint64(-(int64(x) + 1)) + 1
}
