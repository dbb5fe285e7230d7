package app

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/app"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/deposit"
	abci "github.com/tendermint/tendermint/abci/types"
)

// LookupDeposit reads a deposit through the query interface of a, as a
// client connected to the node would see it.
func LookupDeposit(a abci.Application, leaseID string) (*deposit.Deposit, error) {
	raw, err := app.NewABCIStore(a, "/deposits").Get([]byte(leaseID))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "lease %q", leaseID)
	}
	var d deposit.Deposit
	if err := d.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(err, "cannot unmarshal deposit")
	}
	return &d, nil
}
