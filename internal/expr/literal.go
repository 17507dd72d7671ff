package expr

import (
	"fmt"

	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/environment"
)

// A LiteralColumn is an expression that evaluates to a column known in advance.
type LiteralColumn struct {
	Column column.Column
}

// Eval returns the column, whatever the environment.
func (l LiteralColumn) Eval(*environment.Environment) (column.Column, error) {
	return l.Column, nil
}

// IsEqual compares this expression with the other expression and returns
// true if they hold the same column.
func (l LiteralColumn) IsEqual(other Expr) bool {
	o, ok := other.(LiteralColumn)
	if !ok {
		return false
	}

	return l.Column == o.Column
}

func (l LiteralColumn) String() string {
	return fmt.Sprintf("<%s column, %d rows>", l.Column.Type(), l.Column.Len())
}
