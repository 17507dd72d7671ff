package expr_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/arith/internal/block"
	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/environment"
	"github.com/chaisql/arith/internal/expr"
	"github.com/chaisql/arith/internal/testutil"
	"github.com/chaisql/arith/internal/testutil/assert"
)

func TestColumnExpr(t *testing.T) {
	c0 := column.FromSlice([]int64{1, 2})
	env := environment.New(testutil.MakeBlock(t, c0))

	got, err := expr.Column("c0").Eval(env)
	assert.NoError(t, err)
	require.Equal(t, c0, got)
	require.Equal(t, "c0", expr.Column("c0").String())

	_, err = expr.Column("c9").Eval(env)
	assert.ErrorIs(t, err, block.ErrColumnNotFound)

	_, err = expr.Column("c0").Eval(environment.New(nil))
	assert.Error(t, err)
}

func TestLiteralColumn(t *testing.T) {
	c := column.FromSlice([]float32{1, 2, 3})
	l := expr.LiteralColumn{Column: c}

	got, err := l.Eval(environment.New(nil))
	assert.NoError(t, err)
	require.Equal(t, c, got)
	require.Equal(t, "<real column, 3 rows>", l.String())
}

func TestEqual(t *testing.T) {
	c := column.FromSlice([]int32{1})

	require.True(t, expr.Equal(expr.Column("a"), expr.Column("a")))
	require.False(t, expr.Equal(expr.Column("a"), expr.Column("b")))
	require.True(t, expr.Equal(expr.LiteralColumn{Column: c}, expr.LiteralColumn{Column: c}))
	require.False(t, expr.Equal(expr.LiteralColumn{Column: c}, expr.LiteralColumn{Column: column.FromSlice([]int32{1})}))
	require.False(t, expr.Equal(expr.Column("a"), expr.LiteralColumn{Column: c}))
}
