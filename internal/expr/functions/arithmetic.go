package functions

import (
	"github.com/cockroachdb/errors"

	"github.com/chaisql/arith/internal/block/column"
)

var arithmeticFunctions = Definitions{
	"floordiv": NewVectorDefinition("floordiv", 2, binaryCall("floordiv", column.FloorDiv)),
	"floormod": NewVectorDefinition("floormod", 2, binaryCall("floormod", column.FloorMod)),
	"pow":      NewVectorDefinition("pow", 2, binaryCall("pow", column.Pow)),
}

// ArithmeticFunctions returns the floordiv, floormod and pow functions.
func ArithmeticFunctions() Definitions {
	return arithmeticFunctions
}

// Register adds the arithmetic functions to the default package of t,
// creating it if needed. Registering them again is a no-op.
// It fails without modifying t if one of the names is already used
// by another function.
func Register(t Packages) error {
	fs, ok := t[""]
	if !ok {
		fs = Definitions{}
		t[""] = fs
	}

	for name, def := range arithmeticFunctions {
		if cur, ok := fs[name]; ok && cur != def {
			return errors.Errorf("cannot register %q: function already exists", name)
		}
	}

	for name, def := range arithmeticFunctions {
		fs[name] = def
	}

	return nil
}

func binaryCall(name string, op func(a, b column.Column, opts ...column.Option) (column.Column, error)) func([]column.Option, ...column.Column) (column.Column, error) {
	return func(opts []column.Option, args ...column.Column) (column.Column, error) {
		a, b := args[0], args[1]
		if !a.Type().IsNumber() || !b.Type().IsNumber() {
			return nil, errors.Errorf("%s(arg1, arg2) expects numeric arguments, got %s and %s", name, a.Type(), b.Type())
		}
		return op(a, b, opts...)
	}
}
