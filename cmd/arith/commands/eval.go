package commands

import (
	"io"

	"github.com/cockroachdb/errors"
	"github.com/urfave/cli/v2"

	"github.com/chaisql/arith/internal/block"
	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/environment"
	"github.com/chaisql/arith/internal/expr"
	"github.com/chaisql/arith/internal/expr/functions"
	"github.com/chaisql/arith/internal/types"
)

// NewEvalCommand returns a cli.Command for "arith eval".
func NewEvalCommand() *cli.Command {
	return &cli.Command{
		Name:      "eval",
		Usage:     "Evaluate a function over two columns",
		UsageText: "arith eval [options] function lhs rhs",
		Description: `The eval command calls floordiv, floormod or pow on two columns given as JSON arrays
and prints the resulting column. Both columns hold values of the type selected with -t/--type.

$ arith eval floordiv '[10, 11, -1, -34]' '[2, 2, 2, 10]'
[5, 5, -1, -4]

null values are propagated. Float columns accept "NaN", "+Inf" and "-Inf":

$ arith eval -t double floormod '[13, null, 1]' '[-3, 2, 0]'
[-2, null, "NaN"]

The first failing row stops the evaluation:

$ arith eval pow '[2, 3, 4]' '[1, -1, -2]'
error: pow: row 1: Integers to negative integer powers are not allowed`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "type",
				Aliases: []string{"t"},
				Usage:   "type of the columns: integer, bigint, real or double",
				Value:   "bigint",
			},
			&cli.IntFlag{
				Name:    "parallelism",
				Aliases: []string{"p"},
				Usage:   "number of chunks evaluated concurrently",
				Value:   1,
			},
			&cli.IntFlag{
				Name:  "chunk-size",
				Usage: "number of rows per chunk when parallelism is greater than 1",
			},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 3 {
				return cli.Exit("eval takes a function name and two columns", 2)
			}

			typ, err := types.ParseType(c.String("type"))
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			opts := []column.Option{column.WithParallelism(c.Int("parallelism"))}
			if c.IsSet("chunk-size") {
				opts = append(opts, column.WithChunkSize(c.Int("chunk-size")))
			}

			args := c.Args()
			return Eval(c.App.Writer, typ, args.Get(0), args.Get(1), args.Get(2), opts...)
		},
	}
}

// Eval parses lhs and rhs as columns of type typ, calls the function fname on them
// and writes the result to w as a JSON array.
func Eval(w io.Writer, typ types.Type, fname, lhs, rhs string, opts ...column.Option) error {
	a, err := parseColumn(typ, lhs)
	if err != nil {
		return err
	}
	b, err := parseColumn(typ, rhs)
	if err != nil {
		return err
	}

	blk, err := block.New([]string{"lhs", "rhs"}, []column.Column{a, b})
	if err != nil {
		return err
	}

	fn, err := functions.DefaultPackages().Build("", fname, expr.Column("lhs"), expr.Column("rhs"))
	if err != nil {
		return err
	}

	res, err := fn.Eval(environment.New(blk, opts...))
	if err != nil {
		return err
	}

	out, err := column.AppendJSON(nil, res)
	if err != nil {
		return err
	}

	_, err = w.Write(append(out, '\n'))
	return err
}

func parseColumn(typ types.Type, s string) (column.Column, error) {
	switch typ {
	case types.TypeInteger:
		return column.ParseJSON[int32]([]byte(s))
	case types.TypeBigint:
		return column.ParseJSON[int64]([]byte(s))
	case types.TypeReal:
		return column.ParseJSON[float32]([]byte(s))
	case types.TypeDouble:
		return column.ParseJSON[float64]([]byte(s))
	}

	return nil, errors.Errorf("unsupported type %s", typ)
}
