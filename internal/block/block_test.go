package block_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/arith/internal/block"
	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/testutil/assert"
)

func TestBlock(t *testing.T) {
	a := column.FromSlice([]int32{1, 2, 3})
	b := column.FromSlice([]float64{1, 2, 3})

	blk, err := block.New([]string{"a", "b"}, []column.Column{a, b})
	assert.NoError(t, err)
	require.Equal(t, 3, blk.Len())
	require.Equal(t, 2, blk.Width())
	require.Equal(t, []string{"a", "b"}, blk.Names())
	require.Equal(t, b, blk.ColumnAt(1))

	c, err := blk.Column("a")
	assert.NoError(t, err)
	require.Equal(t, a, c)

	_, err = blk.Column("c")
	assert.ErrorIs(t, err, block.ErrColumnNotFound)

	t.Run("length mismatch", func(t *testing.T) {
		_, err := block.New([]string{"a", "b"}, []column.Column{a, column.FromSlice([]int32{1})})
		assert.Error(t, err)
	})

	t.Run("duplicate name", func(t *testing.T) {
		_, err := block.New([]string{"a", "a"}, []column.Column{a, a})
		assert.Error(t, err)
	})

	t.Run("names and columns", func(t *testing.T) {
		_, err := block.New([]string{"a"}, []column.Column{a, b})
		assert.Error(t, err)
	})
}
