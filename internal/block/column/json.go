package column

import (
	"math"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/cockroachdb/errors"

	"github.com/chaisql/arith/internal/types"
)

// ParseJSON turns a JSON array into a column of T.
// null elements become null values. Float columns also accept
// the strings "NaN", "Inf", "+Inf" and "-Inf".
func ParseJSON[T types.Number](data []byte) (*Vector[T], error) {
	v := NewVector[T](0)

	var perr error
	_, err := jsonparser.ArrayEach(data, func(value []byte, dataType jsonparser.ValueType, _ int, err error) {
		if perr != nil {
			return
		}
		if err != nil {
			perr = err
			return
		}

		switch dataType {
		case jsonparser.Null:
			v.AppendNull()
		case jsonparser.Number, jsonparser.String:
			x, err := parseNumber[T](value)
			if err != nil {
				perr = err
				return
			}
			v.Append(x)
		default:
			perr = errors.Errorf("unexpected %s element %q", dataType, value)
		}
	})
	if err != nil {
		return nil, errors.Wrapf(err, "invalid %s column %q", types.TypeOf[T](), data)
	}
	if perr != nil {
		return nil, errors.Wrapf(perr, "invalid %s column %q", types.TypeOf[T](), data)
	}

	return v, nil
}

func parseNumber[T types.Number](value []byte) (T, error) {
	switch types.TypeOf[T]() {
	case types.TypeInteger:
		x, err := jsonparser.ParseInt(value)
		if err != nil {
			return 0, err
		}
		if x < math.MinInt32 || x > math.MaxInt32 {
			return 0, errors.Errorf("%d out of range for int32", x)
		}
		return T(x), nil
	case types.TypeBigint:
		x, err := jsonparser.ParseInt(value)
		if err != nil {
			return 0, err
		}
		return T(x), nil
	case types.TypeReal:
		x, err := strconv.ParseFloat(string(value), 32)
		if err != nil {
			return 0, err
		}
		return T(x), nil
	default:
		x, err := strconv.ParseFloat(string(value), 64)
		if err != nil {
			return 0, err
		}
		return T(x), nil
	}
}

// AppendJSON appends the JSON array representation of c to dst.
// Null values are written as null, non finite floats as "NaN", "+Inf" or "-Inf".
func AppendJSON(dst []byte, c Column) ([]byte, error) {
	switch v := c.(type) {
	case *Vector[int32]:
		return appendJSON(dst, v, func(dst []byte, x int32) []byte {
			return strconv.AppendInt(dst, int64(x), 10)
		}), nil
	case *Vector[int64]:
		return appendJSON(dst, v, func(dst []byte, x int64) []byte {
			return strconv.AppendInt(dst, x, 10)
		}), nil
	case *Vector[float32]:
		return appendJSON(dst, v, func(dst []byte, x float32) []byte {
			return appendFloat(dst, float64(x), 32)
		}), nil
	case *Vector[float64]:
		return appendJSON(dst, v, func(dst []byte, x float64) []byte {
			return appendFloat(dst, x, 64)
		}), nil
	}

	return nil, errors.Errorf("unsupported column %T", c)
}

func appendJSON[T types.Number](dst []byte, v *Vector[T], fn func([]byte, T) []byte) []byte {
	dst = append(dst, '[')
	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			dst = append(dst, ", "...)
		}
		if v.IsNull(i) {
			dst = append(dst, "null"...)
			continue
		}
		dst = fn(dst, v.Value(i))
	}
	return append(dst, ']')
}

func appendFloat(dst []byte, x float64, bitSize int) []byte {
	switch {
	case math.IsNaN(x):
		return append(dst, `"NaN"`...)
	case math.IsInf(x, 1):
		return append(dst, `"+Inf"`...)
	case math.IsInf(x, -1):
		return append(dst, `"-Inf"`...)
	}

	return strconv.AppendFloat(dst, x, 'g', -1, bitSize)
}
