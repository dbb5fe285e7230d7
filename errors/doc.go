/*
Package errors gives every failure of the lease chain an ABCI code.

Root errors are registered once with a unique code. Anything returned by a
handler should wrap one of them:

	return errors.Wrapf(errors.ErrState, "deposit %s is %s", id, status)

Callers test the kind with ErrState.Is(err), which looks through wraps,
field errors and lists built by Append. The innermost wrap records a stack
trace that is printed with %+v.
*/
package errors
