package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chaisql/arith/internal/block/column"
	errs "github.com/chaisql/arith/internal/errors"
	"github.com/chaisql/arith/internal/expr/functions"
	"github.com/chaisql/arith/internal/types"
)

func TestEval(t *testing.T) {
	tests := []struct {
		typ      types.Type
		fname    string
		lhs, rhs string
		want     string
	}{
		{types.TypeBigint, "floordiv", `[10, 11, -1, -34]`, `[2, 2, 2, 10]`, "[5, 5, -1, -4]\n"},
		{types.TypeInteger, "floormod", `[13, -13, 13, -13]`, `[3, 3, -3, -3]`, "[1, 2, -2, -1]\n"},
		{types.TypeDouble, "floormod", `[13, null, 1]`, `[-3, 2, 0]`, "[-2, null, \"NaN\"]\n"},
		{types.TypeReal, "floordiv", `[10.5, 1, -1]`, `[2, 0, 0]`, "[5, \"+Inf\", \"-Inf\"]\n"},
		{types.TypeBigint, "pow", `[9, -9, 0]`, `[3, 3, 0]`, "[729, -729, 1]\n"},
		{types.TypeBigint, "POW", `[]`, `[]`, "[]\n"},
	}

	for _, test := range tests {
		t.Run(test.fname, func(t *testing.T) {
			var buf bytes.Buffer
			err := Eval(&buf, test.typ, test.fname, test.lhs, test.rhs)
			require.NoError(t, err)
			require.Equal(t, test.want, buf.String())
		})
	}
}

func TestEvalErrors(t *testing.T) {
	var buf bytes.Buffer

	err := Eval(&buf, types.TypeBigint, "pow", `[2, 3, 4]`, `[1, -1, -2]`, column.WithParallelism(2), column.WithChunkSize(1))
	require.True(t, errs.IsDomainError(err))
	require.EqualError(t, err, "pow: row 1: Integers to negative integer powers are not allowed")

	err = Eval(&buf, types.TypeInteger, "floordiv", `[1]`, `[0]`)
	require.True(t, errs.IsDivisionByZero(err))

	err = Eval(&buf, types.TypeBigint, "floordiv", `[1, 2]`, `[1]`)
	require.EqualError(t, err, `column "rhs" has 1 rows, expected 2`)

	err = Eval(&buf, types.TypeBigint, "sqrt", `[1]`, `[1]`)
	require.EqualError(t, err, `no such function: "sqrt"`)

	err = Eval(&buf, types.TypeInteger, "pow", `[1.5]`, `[1]`)
	require.Error(t, err)

	require.Zero(t, buf.Len())
}

func TestApp(t *testing.T) {
	var buf bytes.Buffer

	app := NewApp()
	app.Writer = &buf

	err := app.Run([]string{"arith", "eval", "-t", "integer", "-p", "4", "--chunk-size", "2", "floormod", `[13, -13, 13, -13, null]`, `[3, 3, -3, -3, 0]`})
	require.NoError(t, err)
	require.Equal(t, "[1, 2, -2, -1, null]\n", buf.String())

	buf.Reset()
	err = app.Run([]string{"arith", "functions"})
	require.NoError(t, err)
	require.Equal(t, "floordiv(arg1, arg2)\nfloormod(arg1, arg2)\npow(arg1, arg2)\n", buf.String())
}

func TestListFunctions(t *testing.T) {
	pkgs := functions.Packages{
		"math": functions.Definitions{
			"abs": functions.NewVectorDefinition("abs", 1, nil),
		},
	}
	require.NoError(t, functions.Register(pkgs))

	var buf bytes.Buffer
	require.NoError(t, listFunctions(&buf, pkgs))
	require.Equal(t, "floordiv(arg1, arg2)\nfloormod(arg1, arg2)\npow(arg1, arg2)\nmath.abs(arg1)\n", buf.String())
}
