package errors

import "fmt"

// Root errors. Codes are part of the client protocol and must not change.
var (
	// ErrUnauthorized means the transaction lacks a required signature.
	ErrUnauthorized = Register(2, "unauthorized")
	// ErrNotFound means the referenced account or deposit does not exist.
	ErrNotFound = Register(3, "not found")
	// ErrMsg is a malformed or unroutable message.
	ErrMsg = Register(4, "invalid message")
	// ErrModel is a stored entity that does not decode or validate.
	ErrModel = Register(5, "invalid model")
	// ErrDuplicate is a key or unique index value that is already taken.
	ErrDuplicate = Register(6, "duplicate")
	// ErrHuman marks a code path that correct callers never reach.
	ErrHuman = Register(7, "coding error")
	// ErrImmutable is an attempt to change a value that is fixed.
	ErrImmutable = Register(8, "cannot be modified")
	// ErrEmpty is a required value that was left empty.
	ErrEmpty = Register(9, "value is empty")
	// ErrState is an operation that the current deposit status forbids.
	ErrState = Register(10, "invalid state")
	// ErrType is a value of an unexpected Go type.
	ErrType = Register(11, "invalid type")
	// ErrInsufficientAmount is a balance too low for a transfer.
	ErrInsufficientAmount = Register(12, "insufficient amount")
	// ErrAmount is a zero, negative or otherwise unusable amount.
	ErrAmount = Register(13, "invalid amount")
	// ErrInput is any other invalid argument.
	ErrInput = Register(14, "invalid input")
	// ErrMetadata is missing metadata or an unsupported schema version.
	ErrMetadata = Register(15, "invalid metadata")
	// ErrOverflow is an arithmetic result that does not fit.
	ErrOverflow = Register(16, "an operation cannot be completed due to value overflow")
	// ErrDatabase is a failure of the underlying store.
	ErrDatabase = Register(17, "database")
	// ErrPanic is a recovered panic. Its details are not sent to clients.
	ErrPanic = Register(111222, "panic")
)

// registry maps every code in use to its root error. Code 1 is reserved
// for errors that carry no code.
var registry = map[uint32]*Error{
	internalABCICode: {code: internalABCICode, desc: internalABCILog},
}

// Register declares a root error. It panics when the code is taken, so
// call it only from package level variable declarations.
func Register(code uint32, description string) *Error {
	if prev, ok := registry[code]; ok {
		panic(fmt.Sprintf("error code %d is already registered as %q", code, prev.desc))
	}
	e := &Error{code: code, desc: description}
	registry[code] = e
	return e
}
