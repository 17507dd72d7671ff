package types

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Type represents the element type of a column.
type Type uint8

// List of supported types.
const (
	// TypeAny denotes the absence of type
	TypeAny Type = iota
	TypeInteger
	TypeBigint
	TypeReal
	TypeDouble
)

func (t Type) String() string {
	switch t {
	case TypeAny:
		return "any"
	case TypeInteger:
		return "integer"
	case TypeBigint:
		return "bigint"
	case TypeReal:
		return "real"
	case TypeDouble:
		return "double"
	}

	panic(fmt.Sprintf("unsupported type %#v", t))
}

// GoName returns the name of the Go type backing t.
func (t Type) GoName() string {
	switch t {
	case TypeInteger:
		return "int32"
	case TypeBigint:
		return "int64"
	case TypeReal:
		return "float32"
	case TypeDouble:
		return "float64"
	}

	panic(fmt.Sprintf("unsupported type %v", t))
}

// ParseType returns the type named s, either by its SQL name
// or by the name of its Go type.
func ParseType(s string) (Type, error) {
	switch strings.ToLower(s) {
	case "integer", "int", "int32":
		return TypeInteger, nil
	case "bigint", "int64":
		return TypeBigint, nil
	case "real", "float32":
		return TypeReal, nil
	case "double", "float64":
		return TypeDouble, nil
	}

	return TypeAny, errors.Errorf("unknown type %q", s)
}

// IsNumber returns true if t is either an integer or a float.
func (t Type) IsNumber() bool {
	return t.IsInteger() || t.IsFloat()
}

func (t Type) IsInteger() bool {
	return t == TypeInteger || t == TypeBigint
}

func (t Type) IsFloat() bool {
	return t == TypeReal || t == TypeDouble
}

// IsAny returns whether this is type is Any or a real type
func (t Type) IsAny() bool {
	return t == TypeAny
}

// Integer is the set of integer element types.
type Integer interface {
	int32 | int64
}

// Float is the set of floating point element types.
type Float interface {
	float32 | float64
}

// Number is the set of element types a column can hold.
type Number interface {
	Integer | Float
}

// TypeOf returns the type tag of T.
func TypeOf[T Number]() Type {
	var zero T
	switch any(zero).(type) {
	case int32:
		return TypeInteger
	case int64:
		return TypeBigint
	case float32:
		return TypeReal
	default:
		return TypeDouble
	}
}
