package x

import "github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"

// Authenticator tells a handler who authorized the transaction in ctx.
// Handlers receive one in their constructor and never look at
// signatures themselves.
type Authenticator interface {
	// GetConditions lists the fulfilled conditions. The first one is
	// the main signer.
	GetConditions(weave.Context) []weave.Condition
	// HasAddress reports whether any fulfilled condition has addr.
	HasAddress(weave.Context, weave.Address) bool
}

// ChainAuth merges several authenticators. Conditions keep the order of
// their first appearance and are not repeated.
func ChainAuth(auths ...Authenticator) Authenticator {
	return chain(auths)
}

type chain []Authenticator

func (c chain) GetConditions(ctx weave.Context) []weave.Condition {
	var all []weave.Condition
	seen := make(map[string]bool)
	for _, a := range c {
		for _, cond := range a.GetConditions(ctx) {
			if !seen[string(cond)] {
				seen[string(cond)] = true
				all = append(all, cond)
			}
		}
	}
	return all
}

func (c chain) HasAddress(ctx weave.Context, addr weave.Address) bool {
	for _, a := range c {
		if a.HasAddress(ctx, addr) {
			return true
		}
	}
	return false
}

// MainSigner is the first fulfilled condition, or nil.
func MainSigner(ctx weave.Context, auth Authenticator) weave.Condition {
	if conds := auth.GetConditions(ctx); len(conds) > 0 {
		return conds[0]
	}
	return nil
}
