package deposit

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x"
)

const (
	createDepositCost  int64 = 300
	releaseDepositCost int64 = 0
	returnDepositCost  int64 = 0
	disputeDepositCost int64 = 50
)

// RegisterRoutes will instantiate and register
// all handlers in this package
func RegisterRoutes(r weave.Registry, auth x.Authenticator, ctrl Controller) {
	r.Handle(pathCreateMsg, CreateDepositHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathReleaseMsg, ReleaseDepositHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathReturnMsg, ReturnDepositHandler{auth: auth, ctrl: ctrl})
	r.Handle(pathDisputeMsg, DisputeDepositHandler{auth: auth, ctrl: ctrl})
}

// RegisterQuery will register this bucket as "/deposits"
func RegisterQuery(qr weave.QueryRouter) {
	NewBucket().Register("deposits", qr)
}

// CreateDepositHandler escrows a new deposit.
type CreateDepositHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = CreateDepositHandler{}

// Check just verifies it is properly formed and returns
// the cost of executing it.
func (h CreateDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: createDepositCost}, nil
}

// Deliver moves the amount from the tenant to the custody account and
// stores the deposit.
func (h CreateDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	t, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	d, err := h.ctrl.apply(db, t)
	if err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: []byte(d.LeaseID)}, nil
}

func (h CreateDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*transition, error) {
	var msg CreateMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, err
	}
	sender, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	return h.ctrl.planCreate(db, height, sender, msg.LeaseID, msg.Landlord, msg.Amount)
}

// ReleaseDepositHandler pays a held deposit to the landlord.
type ReleaseDepositHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = ReleaseDepositHandler{}

func (h ReleaseDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: releaseDepositCost}, nil
}

func (h ReleaseDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	t, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.apply(db, t); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: []byte(t.deposit.LeaseID)}, nil
}

func (h ReleaseDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*transition, error) {
	var msg ReleaseMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, err
	}
	sender, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	return h.ctrl.planRelease(db, height, sender, msg.LeaseID)
}

// ReturnDepositHandler pays a held deposit back to the tenant.
type ReturnDepositHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = ReturnDepositHandler{}

func (h ReturnDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: returnDepositCost}, nil
}

func (h ReturnDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	t, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.apply(db, t); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: []byte(t.deposit.LeaseID)}, nil
}

func (h ReturnDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*transition, error) {
	var msg ReturnMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	height, err := blockHeight(ctx)
	if err != nil {
		return nil, err
	}
	sender, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	return h.ctrl.planReturn(db, height, sender, msg.LeaseID)
}

// DisputeDepositHandler locks a held deposit.
type DisputeDepositHandler struct {
	auth x.Authenticator
	ctrl Controller
}

var _ weave.Handler = DisputeDepositHandler{}

func (h DisputeDepositHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: disputeDepositCost}, nil
}

func (h DisputeDepositHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	t, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if _, err := h.ctrl.apply(db, t); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: []byte(t.deposit.LeaseID)}, nil
}

func (h DisputeDepositHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*transition, error) {
	var msg DisputeMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	sender, err := mainSigner(ctx, h.auth)
	if err != nil {
		return nil, err
	}
	return h.ctrl.planDispute(db, sender, msg.LeaseID)
}

// mainSigner returns the address acting as the sender of the transaction.
func mainSigner(ctx weave.Context, auth x.Authenticator) (weave.Address, error) {
	signer := x.MainSigner(ctx, auth)
	if signer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "no signer")
	}
	return signer.Address(), nil
}

func blockHeight(ctx weave.Context) (int64, error) {
	height, ok := weave.GetHeight(ctx)
	if !ok {
		return 0, errors.Wrap(errors.ErrHuman, "block height not set")
	}
	return height, nil
}
