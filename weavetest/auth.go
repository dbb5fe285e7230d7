package weavetest

import (
	"context"
	"fmt"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
)

// Auth is a static x.Authenticator. Every condition listed either as the
// Signer or in Signers is reported as signing each transaction.
type Auth struct {
	// Signer is a shortcut for tests that need a single party, for
	// example a tenant creating a deposit.
	Signer weave.Condition

	Signers []weave.Condition
}

func (a *Auth) GetConditions(weave.Context) []weave.Condition {
	if a.Signer != nil {
		return append(a.Signers, a.Signer)
	}
	return a.Signers
}

func (a *Auth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

// CtxAuth is an x.Authenticator that reads the signing conditions from
// the context. Tests attach them per transaction with SetConditions, so
// the same handler can be called on behalf of a tenant and then a
// landlord.
type CtxAuth struct {
	// Key under which the conditions are kept in the context.
	Key string
}

// SetConditions returns a child context signed by given conditions.
func (a *CtxAuth) SetConditions(ctx weave.Context, conds ...weave.Condition) weave.Context {
	return context.WithValue(ctx, a.Key, conds)
}

func (a *CtxAuth) GetConditions(ctx weave.Context) []weave.Condition {
	switch conds := ctx.Value(a.Key).(type) {
	case nil:
		return nil
	case []weave.Condition:
		return conds
	default:
		panic(fmt.Sprintf("context key %q holds %T", a.Key, conds))
	}
}

func (a *CtxAuth) HasAddress(ctx weave.Context, addr weave.Address) bool {
	return hasAddress(a.GetConditions(ctx), addr)
}

func hasAddress(conds []weave.Condition, addr weave.Address) bool {
	for _, c := range conds {
		if addr.Equals(c.Address()) {
			return true
		}
	}
	return false
}
