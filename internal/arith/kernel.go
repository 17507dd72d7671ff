// Package arith implements floor division, floor modulo and power on single
// numeric values.
//
// Integer operators round toward negative infinity and fail on zero divisors,
// negative exponents and overflowing powers. Float operators never fail: their
// edge cases resolve to +Inf, -Inf or NaN as IEEE-754 arithmetic does.
package arith

import (
	"github.com/chaisql/arith/internal/types"
)

// A Kernel computes one operator on a pair of non-null values.
type Kernel[T types.Number] func(a, b T) (T, error)

// FloorDiv returns the floor division kernel for T.
func FloorDiv[T types.Number]() Kernel[T] {
	var k any
	switch types.TypeOf[T]() {
	case types.TypeInteger:
		k = Kernel[int32](FloorDivInt[int32])
	case types.TypeBigint:
		k = Kernel[int64](FloorDivInt[int64])
	case types.TypeReal:
		k = floatKernel(FloorDivFloat[float32])
	case types.TypeDouble:
		k = floatKernel(FloorDivFloat[float64])
	}

	return k.(Kernel[T])
}

// FloorMod returns the floor modulo kernel for T.
func FloorMod[T types.Number]() Kernel[T] {
	var k any
	switch types.TypeOf[T]() {
	case types.TypeInteger:
		k = Kernel[int32](FloorModInt[int32])
	case types.TypeBigint:
		k = Kernel[int64](FloorModInt[int64])
	case types.TypeReal:
		k = floatKernel(FloorModFloat[float32])
	case types.TypeDouble:
		k = floatKernel(FloorModFloat[float64])
	}

	return k.(Kernel[T])
}

// Pow returns the power kernel for T.
func Pow[T types.Number]() Kernel[T] {
	var k any
	switch types.TypeOf[T]() {
	case types.TypeInteger:
		k = Kernel[int32](PowInt[int32])
	case types.TypeBigint:
		k = Kernel[int64](PowInt[int64])
	case types.TypeReal:
		k = floatKernel(PowFloat[float32])
	case types.TypeDouble:
		k = floatKernel(PowFloat[float64])
	}

	return k.(Kernel[T])
}

func floatKernel[T types.Float](fn func(a, b T) T) Kernel[T] {
	return func(a, b T) (T, error) {
		return fn(a, b), nil
	}
}
