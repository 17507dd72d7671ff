package functions_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/environment"
	"github.com/chaisql/arith/internal/expr"
	"github.com/chaisql/arith/internal/expr/functions"
	"github.com/chaisql/arith/internal/testutil"
	"github.com/chaisql/arith/internal/testutil/assert"
)

func TestVectorFunctionDef(t *testing.T) {
	def := functions.NewVectorDefinition(
		"foo",
		3,
		func(opts []column.Option, args ...column.Column) (column.Column, error) {
			out := column.NewVector[int64](args[0].Len())
			for i := 0; i < args[0].Len(); i++ {
				var sum int64
				for _, a := range args {
					sum += a.(*column.Vector[int64]).Value(i)
				}
				out.Append(sum)
			}
			return out, nil
		},
	)

	t.Run("Name()", func(t *testing.T) {
		require.Equal(t, "foo", def.Name())
	})

	t.Run("Arity()", func(t *testing.T) {
		require.Equal(t, 3, def.Arity())
	})

	t.Run("String()", func(t *testing.T) {
		require.Equal(t, "foo(arg1, arg2, arg3)", def.String())
	})

	t.Run("Function()", func(t *testing.T) {
		env := environment.New(testutil.MakeBlock(t,
			column.FromSlice([]int64{1, 2}),
			column.FromSlice([]int64{10, 20}),
		))
		expr1 := expr.Column("c0")
		expr2 := expr.Column("c1")
		expr3 := expr.LiteralColumn{Column: column.FromSlice([]int64{100, 200})}

		t.Run("OK", func(t *testing.T) {
			fexpr, err := def.Function(expr1, expr2, expr3)
			assert.NoError(t, err)
			require.Equal(t, []expr.Expr{expr1, expr2, expr3}, fexpr.Params())
			require.Equal(t, "foo(c0, c1, <bigint column, 2 rows>)", fexpr.String())

			v, err := fexpr.Eval(env)
			assert.NoError(t, err)
			testutil.RequireColumnEqual(t, column.FromSlice([]int64{111, 222}), v)
		})

		t.Run("NOK", func(t *testing.T) {
			_, err := def.Function(expr1, expr2)
			assert.Error(t, err)
		})

		t.Run("missing column", func(t *testing.T) {
			fexpr, err := def.Function(expr1, expr2, expr.Column("c7"))
			assert.NoError(t, err)
			_, err = fexpr.Eval(env)
			assert.Error(t, err)
		})

		t.Run("IsEqual", func(t *testing.T) {
			f1, err := def.Function(expr1, expr2, expr3)
			assert.NoError(t, err)
			f2, err := def.Function(expr1, expr2, expr3)
			assert.NoError(t, err)
			f3, err := def.Function(expr2, expr1, expr3)
			assert.NoError(t, err)

			require.True(t, expr.Equal(f1, f2))
			require.False(t, expr.Equal(f1, f3))
		})
	})
}

func TestGetFunc(t *testing.T) {
	pkgs := functions.Packages{
		"":     functions.Definitions{},
		"math": functions.Definitions{},
	}
	assert.NoError(t, functions.Register(pkgs))

	def, err := pkgs.GetFunc("", "FloorDiv")
	assert.NoError(t, err)
	require.Equal(t, "floordiv", def.Name())

	_, err = pkgs.GetFunc("nope", "floordiv")
	require.EqualError(t, err, `no such package: "nope"`)

	_, err = pkgs.GetFunc("", "nope")
	require.EqualError(t, err, `no such function: "nope"`)

	_, err = pkgs.GetFunc("math", "floordiv")
	require.EqualError(t, err, `no such function: "math"."floordiv"`)
}
