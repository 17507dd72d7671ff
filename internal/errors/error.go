package errors

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// RowError is returned when a function fails on one row of its input columns.
// The whole call fails: no partial result is produced.
type RowError struct {
	// Func is the name of the function that failed.
	Func string
	// Row is the position of the failing row in the input columns.
	Row int
	Err error
}

// NewRowError wraps err with the failing function and row.
func NewRowError(fn string, row int, err error) error {
	return errors.WithStackDepth(&RowError{Func: fn, Row: row, Err: err}, 1)
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.Func, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// RowOf returns the failing row reported by err, if any.
func RowOf(err error) (int, bool) {
	var re *RowError
	if errors.As(err, &re) {
		return re.Row, true
	}

	return 0, false
}
