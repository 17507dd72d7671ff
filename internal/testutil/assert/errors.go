package assert

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"

	errs "github.com/chaisql/arith/internal/errors"
)

func Error(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Log("Expected error to be present, but got nil instead")
	t.FailNow()
}

func ErrorIs(t testing.TB, err error, target error) {
	t.Helper()
	ErrorIsf(t, err, target, "Expected error to be %v but got %v instead", target, err)
}

func ErrorIsf(t testing.TB, err error, target error, str string, args ...interface{}) {
	t.Helper()

	if errors.Is(err, target) {
		return
	}
	t.Logf(str, args...)
	if err != nil {
		t.Logf("Stacktrace:\n%+v", err)
	}
	t.FailNow()
}

func NoErrorf(t testing.TB, err error, str string, args ...interface{}) {
	t.Helper()

	if err == nil {
		return
	}
	t.Logf(str, args...)
	t.Logf("Stacktrace:\n%+v", err)
	t.FailNow()
}

func NoError(t testing.TB, err error) {
	t.Helper()

	NoErrorf(t, err, "Expected error to be nil but got %q instead", err)
}

// RowError asserts that err is a failure of fn at the given row, of the kind
// of target, and that its message contains msg.
func RowError(t testing.TB, err error, fn string, row int, target error, msg string) {
	t.Helper()

	ErrorIs(t, err, target)

	var re *errs.RowError
	if !errors.As(err, &re) {
		t.Fatalf("Expected a row error but got %v instead", err)
	}
	if re.Func != fn || re.Row != row {
		t.Fatalf("Expected %s to fail at row %d but got %s at row %d", fn, row, re.Func, re.Row)
	}
	if !strings.Contains(err.Error(), msg) {
		t.Fatalf("Expected error message to contain %q but got %q", msg, err.Error())
	}
}
