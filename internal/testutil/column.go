package testutil

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/chaisql/arith/internal/block"
	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/types"
)

// ParseColumn turns a JSON array into a column of T, see column.ParseJSON.
func ParseColumn[T types.Number](s string) (*column.Vector[T], error) {
	return column.ParseJSON[T]([]byte(s))
}

// MakeColumn is like ParseColumn but fails the test on error.
func MakeColumn[T types.Number](t testing.TB, s string) *column.Vector[T] {
	t.Helper()

	v, err := ParseColumn[T](s)
	require.NoError(t, err)
	return v
}

// MakeBlock returns a block with columns named c0, c1, ... in order.
func MakeBlock(t testing.TB, columns ...column.Column) *block.Block {
	t.Helper()

	names := make([]string, len(columns))
	for i := range columns {
		names[i] = "c" + strconv.Itoa(i)
	}

	b, err := block.New(names, columns)
	require.NoError(t, err)
	return b
}

type cell[T types.Number] struct {
	Null  bool
	Value T
}

func cells[T types.Number](t testing.TB, c column.Column) []cell[T] {
	t.Helper()

	v, ok := c.(*column.Vector[T])
	require.True(t, ok, "expected a %s column, got %T", types.TypeOf[T](), c)

	out := make([]cell[T], v.Len())
	for i := range out {
		if v.IsNull(i) {
			out[i].Null = true
			continue
		}
		out[i].Value = v.Value(i)
	}
	return out
}

// RequireColumnEqual checks that got has the type, null positions and values of want.
// NaN values are equal to each other.
func RequireColumnEqual[T types.Number](t testing.TB, want *column.Vector[T], got column.Column) {
	t.Helper()

	require.NotNil(t, got)
	require.Equal(t, want.Type(), got.Type())
	require.Equal(t, want.Len(), got.Len())

	if diff := cmp.Diff(cells[T](t, want), cells[T](t, got), cmpopts.EquateNaNs()); diff != "" {
		require.Failf(t, "columns differ", "(-want +got):\n%s", diff)
	}
}
