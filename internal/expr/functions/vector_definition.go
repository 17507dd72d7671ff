package functions

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/chaisql/arith/internal/block/column"
	"github.com/chaisql/arith/internal/environment"
	"github.com/chaisql/arith/internal/expr"
)

// A VectorDefinition is the definition type for functions which operate on whole columns.
//
// It is defined with a CallFn function that takes the evaluated argument columns and
// returns the result column, rather than having to manually evaluate expressions (see Definition).
type VectorDefinition struct {
	name   string
	arity  int
	callFn func(opts []column.Option, args ...column.Column) (column.Column, error)
}

func NewVectorDefinition(name string, arity int, callFn func(opts []column.Option, args ...column.Column) (column.Column, error)) *VectorDefinition {
	return &VectorDefinition{name: name, arity: arity, callFn: callFn}
}

// Name returns the defined function named (as an ident, so no parentheses).
func (fd *VectorDefinition) Name() string {
	return fd.name
}

// String returns the defined function name and its arguments.
func (fd *VectorDefinition) String() string {
	args := make([]string, 0, fd.arity)
	for i := 0; i < fd.arity; i++ {
		args = append(args, fmt.Sprintf("arg%d", i+1))
	}
	return fmt.Sprintf("%s(%s)", fd.name, strings.Join(args, ", "))
}

// Function returns a Function expr node.
func (fd *VectorDefinition) Function(args ...expr.Expr) (expr.Function, error) {
	if len(args) != fd.arity {
		return nil, errors.Errorf("%s takes %d argument(s), not %d", fd.String(), fd.arity, len(args))
	}
	return &VectorFunction{
		params: args,
		def:    fd,
	}, nil
}

// Arity returns the arity of the defined function.
func (fd *VectorDefinition) Arity() int {
	return fd.arity
}

// A VectorFunction is a function which operates on whole columns.
type VectorFunction struct {
	def    *VectorDefinition
	params []expr.Expr
}

// Eval evaluates the parameters in the given environment and calls
// the underlying function definition with the resulting columns.
func (vf *VectorFunction) Eval(env *environment.Environment) (column.Column, error) {
	args, err := vf.evalParams(env)
	if err != nil {
		return nil, err
	}
	return vf.def.callFn(env.ApplyOptions(), args...)
}

// evalParams evaluate all arguments given to the function in the context of the given environmment.
func (vf *VectorFunction) evalParams(env *environment.Environment) ([]column.Column, error) {
	columns := make([]column.Column, 0, len(vf.params))
	for _, param := range vf.params {
		c, err := param.Eval(env)
		if err != nil {
			return nil, err
		}
		columns = append(columns, c)
	}
	return columns, nil
}

// IsEqual compares this expression with the other expression and returns
// true if they call the same definition with equal parameters.
func (vf *VectorFunction) IsEqual(other expr.Expr) bool {
	o, ok := other.(*VectorFunction)
	if !ok || o.def != vf.def || len(o.params) != len(vf.params) {
		return false
	}

	for i := range vf.params {
		if !expr.Equal(vf.params[i], o.params[i]) {
			return false
		}
	}

	return true
}

// String returns a string represention of the function expression and its arguments.
func (vf *VectorFunction) String() string {
	params := make([]string, len(vf.params))
	for i, p := range vf.params {
		params[i] = p.String()
	}
	return fmt.Sprintf("%s(%s)", vf.def.name, strings.Join(params, ", "))
}

// Params return the function arguments.
func (vf *VectorFunction) Params() []expr.Expr {
	return vf.params
}
