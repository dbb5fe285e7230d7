package errors

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// Error is a registered root error.
type Error struct {
	code uint32
	desc string
}

func (e Error) Error() string { return e.desc }

// ABCICode is the code reported in ABCI responses.
func (e Error) ABCICode() uint32 { return e.code }

// Is reports whether err is this root error or wraps it. A nil kind
// matches only nil errors, including typed nil pointers.
func (kind *Error) Is(err error) bool {
	if kind == nil {
		return errIsNil(err)
	}
	return walk(err, func(e error) bool { return e == error(kind) })
}

// Wrap adds a description in front of err. The first wrap of an error
// records a stack trace. Wrapping nil returns nil.
func Wrap(err error, description string) error {
	if err == nil {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	return &wrapped{msg: description, cause: err}
}

// Wrapf is Wrap with a formatted description.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithType wraps err with the Go type name of obj.
func WithType(err error, obj interface{}) error {
	return Wrap(err, fmt.Sprintf("%T", obj))
}

// Recover turns a panic into ErrPanic stored in err. It works only when
// deferred directly:
//
//	defer errors.Recover(&err)
func Recover(err *error) {
	if r := recover(); r != nil {
		*err = Wrapf(ErrPanic, "%v", r)
	}
}

type wrapped struct {
	msg   string
	cause error
}

func (w *wrapped) Error() string { return w.msg + ": " + w.cause.Error() }
func (w *wrapped) Cause() error  { return w.cause }

// Format prints the stack trace for %+v.
func (w *wrapped) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "%s\n%+v", w.Error(), stackTrace(w))
		return
	}
	fmt.Fprint(s, w.Error())
}

type causer interface {
	Cause() error
}

type unpacker interface {
	Unpack() []error
}

// walk calls visit on err and on everything it wraps, depth first, and
// stops as soon as visit returns true.
func walk(err error, visit func(error) bool) bool {
	for err != nil {
		if visit(err) {
			return true
		}
		if u, ok := err.(unpacker); ok {
			for _, e := range u.Unpack() {
				if walk(e, visit) {
					return true
				}
			}
			return false
		}
		c, ok := err.(causer)
		if !ok {
			return false
		}
		err = c.Cause()
	}
	return false
}

func stackTrace(err error) errors.StackTrace {
	var st errors.StackTrace
	walk(err, func(e error) bool {
		if t, ok := e.(interface{ StackTrace() errors.StackTrace }); ok {
			st = t.StackTrace()
			return true
		}
		return false
	})
	return st
}

// errIsNil also catches typed nil pointers stored in an error interface.
func errIsNil(err error) bool {
	if err == nil {
		return true
	}
	v := reflect.ValueOf(err)
	return v.Kind() == reflect.Ptr && v.IsNil()
}
