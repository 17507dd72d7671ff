package column

import (
	"github.com/cockroachdb/errors"

	"github.com/chaisql/arith/internal/arith"
	"github.com/chaisql/arith/internal/types"
)

// FloorDiv returns the floor division of a by b, row by row.
func FloorDiv(a, b Column, opts ...Option) (Column, error) {
	return binary("floordiv", a, b, kernelSet{
		i32: arith.FloorDiv[int32](),
		i64: arith.FloorDiv[int64](),
		f32: arith.FloorDiv[float32](),
		f64: arith.FloorDiv[float64](),
	}, opts)
}

// FloorMod returns the floor modulo of a by b, row by row.
func FloorMod(a, b Column, opts ...Option) (Column, error) {
	return binary("floormod", a, b, kernelSet{
		i32: arith.FloorMod[int32](),
		i64: arith.FloorMod[int64](),
		f32: arith.FloorMod[float32](),
		f64: arith.FloorMod[float64](),
	}, opts)
}

// Pow returns a raised to the power b, row by row.
func Pow(a, b Column, opts ...Option) (Column, error) {
	return binary("pow", a, b, kernelSet{
		i32: arith.Pow[int32](),
		i64: arith.Pow[int64](),
		f32: arith.Pow[float32](),
		f64: arith.Pow[float64](),
	}, opts)
}

type kernelSet struct {
	i32 arith.Kernel[int32]
	i64 arith.Kernel[int64]
	f32 arith.Kernel[float32]
	f64 arith.Kernel[float64]
}

// binary selects the kernel once per call from the type of a.
func binary(fn string, a, b Column, ks kernelSet, opts []Option) (Column, error) {
	if a.Type() != b.Type() {
		return nil, errors.Wrapf(ErrTypeMismatch, "%s(%s, %s)", fn, a.Type(), b.Type())
	}

	switch x := a.(type) {
	case *Vector[int32]:
		return applyTo(fn, x, b, ks.i32, opts)
	case *Vector[int64]:
		return applyTo(fn, x, b, ks.i64, opts)
	case *Vector[float32]:
		return applyTo(fn, x, b, ks.f32, opts)
	case *Vector[float64]:
		return applyTo(fn, x, b, ks.f64, opts)
	}

	return nil, errors.Errorf("%s: unsupported column %T", fn, a)
}

func applyTo[T types.Number](fn string, a *Vector[T], b Column, k arith.Kernel[T], opts []Option) (Column, error) {
	y, ok := b.(*Vector[T])
	if !ok {
		return nil, errors.Errorf("%s: unsupported column %T", fn, b)
	}

	v, err := Apply(fn, a, y, k, opts...)
	if err != nil {
		return nil, err
	}

	return v, nil
}
