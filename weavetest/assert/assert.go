/*
Package assert holds small test assertions. Every assertion stops the test
on failure.
*/
package assert

import (
	"reflect"
	"strings"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// Tester is the part of testing.TB the assertions use.
type Tester interface {
	Helper()
	Fatalf(format string, args ...interface{})
}

// Nil fails unless value is nil or a nil pointer, slice, map, channel,
// function or interface.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if !isNil(value) {
		// %+v prints the stack trace of wrapped errors
		t.Fatalf("want nil, got %+v", value)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}

// Equal fails unless want and got are deeply equal.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatalf("want panic")
	}
}

func panics(fn func()) (ok bool) {
	defer func() {
		ok = recover() != nil
	}()
	fn()
	return false
}

// IsErr fails unless got is want or wraps it. A nil want only matches a
// nil got.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q error, got %+v", want, got)
}

// FieldError fails unless err holds exactly one error for the field and
// that error is of the want kind. With a nil want it fails if there is any
// error for the field.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()
	found := errors.FieldErrors(err, field)
	if want == nil {
		if len(found) != 0 {
			t.Fatalf("want no %q error, got %s", field, join(found))
		}
		return
	}
	switch {
	case len(found) == 0:
		t.Fatalf("want %q error for %q, got none", want, field)
	case len(found) > 1:
		t.Fatalf("want one %q error for %q, got %s", want, field, join(found))
	case !want.Is(found[0]):
		t.Fatalf("want %q error for %q, got %q", want, field, found[0])
	}
}

func join(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}
