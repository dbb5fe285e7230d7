package errors

import "fmt"

const (
	// SuccessABCICode is the code of a successful response.
	SuccessABCICode = 0

	internalABCICode uint32 = 1
	internalABCILog         = "internal error"
)

// ABCIInfo returns the code and log for an ABCI response. Errors without
// a registered code are reported as code 1. Outside debug mode their
// message is replaced by "internal error" and a recovered panic is
// reported without its details. Debug mode logs everything with the
// stack trace.
func ABCIInfo(err error, debug bool) (uint32, string) {
	if errIsNil(err) {
		return SuccessABCICode, ""
	}
	code := abciCode(err)
	switch {
	case debug:
		return code, fmt.Sprintf("%+v", err)
	case code == internalABCICode:
		return code, internalABCILog
	case ErrPanic.Is(err):
		return code, ErrPanic.Error()
	}
	return code, err.Error()
}

// abciCode finds the first code in the error chain.
func abciCode(err error) uint32 {
	if errIsNil(err) {
		return SuccessABCICode
	}
	code := internalABCICode
	walk(err, func(e error) bool {
		c, ok := e.(interface{ ABCICode() uint32 })
		if ok {
			code = c.ABCICode()
		}
		return ok
	})
	return code
}
