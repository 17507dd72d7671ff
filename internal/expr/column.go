package expr

import (
	"github.com/cockroachdb/errors"

	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/environment"
)

// Column is an expression that evaluates to the block column of that name.
type Column string

func (c Column) String() string {
	return string(c)
}

func (c Column) Eval(env *environment.Environment) (column.Column, error) {
	b, ok := env.GetBlock()
	if !ok {
		return nil, errors.New("no block specified")
	}

	return b.Column(string(c))
}
