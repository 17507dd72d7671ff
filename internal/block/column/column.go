package column

import (
	"github.com/kelindar/bitmap"

	"github.com/chaisql/arith/internal/types"
)

const blockSize = 64 * 1024 // 64KB

// A Column is a fixed-length sequence of values of one type.
// Every position can be null independently of the others.
type Column interface {
	// Type returns the type of the values.
	Type() types.Type
	// Len returns the number of positions, nulls included.
	Len() int
	// IsNull reports whether the value at position i is null.
	IsNull(i int) bool
}

var (
	_ Column = (*Vector[int32])(nil)
	_ Column = (*Vector[int64])(nil)
	_ Column = (*Vector[float32])(nil)
	_ Column = (*Vector[float64])(nil)
)

// Vector is a column of T values backed by a slice and a null bitmap.
// The value stored at a null position is the zero value of T.
type Vector[T types.Number] struct {
	data  []T
	nulls bitmap.Bitmap
}

// NewVector returns an empty vector able to hold capacity values
// before growing.
func NewVector[T types.Number](capacity int) *Vector[T] {
	return &Vector[T]{
		data: make([]T, 0, capacity),
	}
}

// FromSlice returns a vector holding a copy of values, none of them null.
func FromSlice[T types.Number](values []T) *Vector[T] {
	data := make([]T, len(values))
	copy(data, values)
	return &Vector[T]{data: data}
}

func (v *Vector[T]) Type() types.Type {
	return types.TypeOf[T]()
}

func (v *Vector[T]) Len() int {
	return len(v.data)
}

func (v *Vector[T]) IsNull(i int) bool {
	return v.nulls.Contains(uint32(i))
}

// NullCount returns the number of null positions.
func (v *Vector[T]) NullCount() int {
	return v.nulls.Count()
}

// Value returns the value at position i.
// It returns the zero value of T if the position is null.
func (v *Vector[T]) Value(i int) T {
	return v.data[i]
}

// Values returns the underlying values, nulls included as zero values.
// The returned slice must not be modified.
func (v *Vector[T]) Values() []T {
	return v.data
}

// Append appends a non-null value.
func (v *Vector[T]) Append(x T) {
	v.data = append(v.data, x)
}

// AppendNull appends a null value.
func (v *Vector[T]) AppendNull() {
	v.nulls.Set(uint32(len(v.data)))
	var zero T
	v.data = append(v.data, zero)
}

// AppendNullable appends x if valid is true, a null value otherwise.
func (v *Vector[T]) AppendNullable(x T, valid bool) {
	if !valid {
		v.AppendNull()
		return
	}

	v.Append(x)
}

// Reset empties the vector, keeping its allocated memory.
func (v *Vector[T]) Reset() {
	v.data = v.data[:0]
	v.nulls.Clear()
}
