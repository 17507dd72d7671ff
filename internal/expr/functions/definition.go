package functions

import (
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/chaisql/arith/internal/expr"
)

// A Definition transforms a list of expressions into a Function.
type Definition interface {
	Name() string
	String() string
	Function(...expr.Expr) (expr.Function, error)
	Arity() int
}

// Definitions table holds a map of definition, indexed by their names.
type Definitions map[string]Definition

// Packages represent a table of functions grouped by their packages
type Packages map[string]Definitions

// DefaultPackages returns a new table holding the default package,
// with the arithmetic functions registered.
func DefaultPackages() Packages {
	p := Packages{}
	if err := Register(p); err != nil {
		panic(err)
	}

	return p
}

// GetFunc return a function definition by its package and name.
func (t Packages) GetFunc(pkg string, fname string) (Definition, error) {
	fs, ok := t[pkg]
	if !ok {
		return nil, errors.Errorf("no such package: %q", pkg)
	}
	def, ok := fs[strings.ToLower(fname)]
	if !ok {
		if pkg == "" {
			return nil, errors.Errorf("no such function: %q", fname)
		}
		return nil, errors.Errorf("no such function: %q.%q", pkg, fname)
	}
	return def, nil
}

// Build looks up the function fname of package pkg and returns
// a function expression taking args.
func (t Packages) Build(pkg string, fname string, args ...expr.Expr) (expr.Function, error) {
	def, err := t.GetFunc(pkg, fname)
	if err != nil {
		return nil, err
	}

	return def.Function(args...)
}
