/*
Package app turns a weave.Handler and a weave.CommitKVStore into an
abci.Application.

StoreApp owns the state and answers queries. BaseApp decodes incoming
transactions and runs them through the handler stack built with
ChainDecorators and a Router.
*/
package app

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// BaseApp is a complete abci.Application.
type BaseApp struct {
	*StoreApp
	decoder weave.TxDecoder
	handler weave.Handler
	debug   bool
}

var _ abci.Application = BaseApp{}

// NewBaseApp returns an application processing transactions with h.
// In debug mode the failure logs carry the full error stack.
func NewBaseApp(store *StoreApp, decoder weave.TxDecoder, h weave.Handler, debug bool) BaseApp {
	return BaseApp{StoreApp: store, decoder: decoder, handler: h, debug: debug}
}

func (b BaseApp) CheckTx(raw []byte) abci.ResponseCheckTx {
	ctx, tx, err := b.prepare(raw, "check_tx")
	if err != nil {
		return weave.CheckTxError(err, b.debug)
	}
	res, err := b.handler.Check(ctx, b.CheckStore(), tx)
	return weave.CheckOrError(res, err, b.debug)
}

func (b BaseApp) DeliverTx(raw []byte) abci.ResponseDeliverTx {
	ctx, tx, err := b.prepare(raw, "deliver_tx")
	if err != nil {
		return weave.DeliverTxError(err, b.debug)
	}
	res, err := b.handler.Deliver(ctx, b.DeliverStore(), tx)
	return weave.DeliverOrError(res, err, b.debug)
}

// prepare decodes the transaction and returns the block context
// annotated for it.
func (b BaseApp) prepare(raw []byte, call string) (weave.Context, weave.Tx, error) {
	tx, err := b.decode(raw)
	if err != nil {
		return nil, nil, err
	}
	ctx := weave.WithLogInfo(b.BlockContext(), "call", call, "path", weave.GetPath(tx))
	return ctx, tx, nil
}

// decode converts a decoder panic into an error.
func (b BaseApp) decode(raw []byte) (tx weave.Tx, err error) {
	defer errors.Recover(&err)
	return b.decoder(raw)
}
