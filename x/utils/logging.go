package utils

import (
	"time"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/tendermint/tendermint/libs/log"
)

// Logging writes a line for every processed transaction. Failures are
// logged as errors together with their ABCI code. Successful checks are
// logged at debug level and successful deliveries at info level.
type Logging struct{}

var _ weave.Decorator = Logging{}

func NewLogging() Logging { return Logging{} }

func (Logging) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	started := time.Now()
	res, err := next.Check(ctx, db, tx)
	l := txLogger(ctx, tx, "check", started)
	if err != nil {
		logFailure(l, err)
	} else {
		l.Debug(res.Log, "gas", res.GasAllocated)
	}
	return res, err
}

func (Logging) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	started := time.Now()
	res, err := next.Deliver(ctx, db, tx)
	l := txLogger(ctx, tx, "deliver", started)
	if err != nil {
		logFailure(l, err)
	} else {
		l.Info(res.Log)
	}
	return res, err
}

func txLogger(ctx weave.Context, tx weave.Tx, phase string, started time.Time) log.Logger {
	return weave.GetLogger(ctx).With(
		"phase", phase,
		"path", weave.GetPath(tx),
		"height", heightOf(ctx),
		"took_us", int64(time.Since(started)/time.Microsecond),
	)
}

func logFailure(l log.Logger, err error) {
	code, _ := errors.ABCIInfo(err, false)
	l.Error("transaction failed", "code", code, "err", err)
}

func heightOf(ctx weave.Context) int64 {
	h, _ := weave.GetHeight(ctx)
	return h
}
