package weave

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/common"
)

// CheckResult is returned by a successful CheckTx.
type CheckResult struct {
	Data []byte
	Log  string
	// GasAllocated limits the work the transaction may do once
	// delivered.
	GasAllocated int64
}

func (c CheckResult) ToABCI() abci.ResponseCheckTx {
	return abci.ResponseCheckTx{Data: c.Data, Log: c.Log, GasWanted: c.GasAllocated}
}

// DeliverResult is returned by a successful DeliverTx. Data carries a
// machine readable result, for example the key of a created deposit.
// Tags are indexed by tendermint and let clients search the history.
type DeliverResult struct {
	Data []byte
	Log  string
	Tags []common.KVPair
}

func (d DeliverResult) ToABCI() abci.ResponseDeliverTx {
	return abci.ResponseDeliverTx{Data: d.Data, Log: d.Log, Tags: d.Tags}
}

// CheckOrError builds the CheckTx response from a handler outcome.
func CheckOrError(res *CheckResult, err error, debug bool) abci.ResponseCheckTx {
	if err != nil {
		return CheckTxError(err, debug)
	}
	return res.ToABCI()
}

// DeliverOrError builds the DeliverTx response from a handler outcome.
func DeliverOrError(res *DeliverResult, err error, debug bool) abci.ResponseDeliverTx {
	if err != nil {
		return DeliverTxError(err, debug)
	}
	return res.ToABCI()
}

// CheckTxError reports err to tendermint. Unregistered errors are
// hidden unless debug is set, see errors.ABCIInfo.
func CheckTxError(err error, debug bool) abci.ResponseCheckTx {
	code, log := failure("cannot check tx", err, debug)
	return abci.ResponseCheckTx{Code: code, Log: log}
}

// DeliverTxError reports err to tendermint like CheckTxError.
func DeliverTxError(err error, debug bool) abci.ResponseDeliverTx {
	code, log := failure("cannot deliver tx", err, debug)
	return abci.ResponseDeliverTx{Code: code, Log: log}
}

func QueryError(err error, debug bool) abci.ResponseQuery {
	code, log := errors.ABCIInfo(err, debug)
	return abci.ResponseQuery{Code: code, Log: log}
}

func failure(prefix string, err error, debug bool) (uint32, string) {
	code, log := errors.ABCIInfo(err, debug)
	if code == errors.SuccessABCICode {
		return code, log
	}
	return code, prefix + ": " + log
}
