package errors

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Field attributes err to a named field of a message or model, for
// example LeaseID or Amount. It returns nil when err is nil.
func Field(name string, err error, description string, args ...interface{}) error {
	if errIsNil(err) {
		return nil
	}
	if stackTrace(err) == nil {
		err = errors.WithStack(err)
	}
	if len(args) > 0 {
		description = fmt.Sprintf(description, args...)
	}
	return &fieldError{field: name, desc: description, cause: err}
}

// AppendField adds the field error of err, if any, to errs.
func AppendField(errs error, name string, err error) error {
	return Append(errs, Field(name, err, ""))
}

type fieldError struct {
	field string
	desc  string
	cause error
}

func (f *fieldError) Error() string {
	if f.desc == "" {
		return fmt.Sprintf("field %q: %s", f.field, f.cause)
	}
	return fmt.Sprintf("field %q: %s: %s", f.field, f.desc, f.cause)
}

func (f *fieldError) Cause() error { return f.cause }

// FieldErrors returns the errors that were attributed to the field name.
func FieldErrors(err error, name string) []error {
	var found []error
	walk(err, func(e error) bool {
		if f, ok := e.(*fieldError); ok && f.field == name {
			found = append(found, e)
		}
		return false
	})
	return found
}

// Append joins errors into one. Nil errors are dropped and nested lists
// are flattened. A single remaining error is returned unchanged.
func Append(errs ...error) error {
	var all list
	for _, e := range errs {
		switch e := e.(type) {
		case list:
			all = append(all, e...)
		default:
			if !errIsNil(e) {
				all = append(all, e)
			}
		}
	}
	switch len(all) {
	case 0:
		return nil
	case 1:
		return all[0]
	}
	return all
}

// list is the result of Append. It reports the code of its first error.
type list []error

func (l list) Unpack() []error { return l }

func (l list) ABCICode() uint32 { return abciCode(l[0]) }

func (l list) Error() string {
	lines := make([]string, len(l))
	for i, e := range l {
		lines[i] = "* " + e.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(l), strings.Join(lines, "\n\t"))
}
