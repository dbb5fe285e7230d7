package ledger

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x"
)

// sendGas is charged in CheckTx for every transfer.
const sendGas = 100

// RegisterRoutes exposes the transfer of funds between parties.
func RegisterRoutes(r weave.Registry, auth x.Authenticator, control Controller) {
	r.Handle(pathSendMsg, NewSendHandler(auth, control))
}

// RegisterQuery serves account balances under "/accounts".
func RegisterQuery(qr weave.QueryRouter) {
	NewAccountBucket().Register("accounts", qr)
}

// SendHandler moves funds out of the account of the signer.
type SendHandler struct {
	auth    x.Authenticator
	control Controller
}

var _ weave.Handler = SendHandler{}

func NewSendHandler(auth x.Authenticator, control Controller) SendHandler {
	return SendHandler{auth: auth, control: control}
}

func (h SendHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.authorized(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: sendGas}, nil
}

func (h SendHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.authorized(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.control.Transfer(db, msg.Source, msg.Destination, msg.Amount); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Log: msg.Memo}, nil
}

// authorized returns the message once it is known that the signer owns
// the source account and that the account covers the amount. The
// balance is checked again by Transfer, this only fails early in
// CheckTx.
func (h SendHandler) authorized(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*SendMsg, error) {
	var msg SendMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if !h.auth.HasAddress(ctx, msg.Source) {
		return nil, errors.Wrapf(errors.ErrUnauthorized, "source %s did not sign", msg.Source)
	}
	switch balance, err := h.control.Balance(db, msg.Source); {
	case err != nil:
		return nil, err
	case balance < msg.Amount:
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", balance, msg.Amount)
	}
	return &msg, nil
}
