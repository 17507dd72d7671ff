package expr

import (
	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/environment"
)

// An Expr evaluates to a column.
type Expr interface {
	Eval(*environment.Environment) (column.Column, error)
	String() string
}

type isEqualer interface {
	IsEqual(Expr) bool
}

// Equal reports whether a and b are equal by first calling IsEqual
// if they have an IsEqual method with this signature:
//
//	IsEqual(Expr) bool
//
// If not, it returns whether a and b values are equal.
func Equal(a, b Expr) bool {
	if aa, ok := a.(isEqualer); ok {
		return aa.IsEqual(b)
	}

	if bb, ok := b.(isEqualer); ok {
		return bb.IsEqual(a)
	}

	return a == b
}
