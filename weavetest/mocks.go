package weavetest

import "github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"

// counter tracks how many times Check and Deliver were called.
type counter struct {
	checks   int
	delivers int
}

func (c *counter) CheckCallCount() int   { return c.checks }
func (c *counter) DeliverCallCount() int { return c.delivers }
func (c *counter) CallCount() int        { return c.checks + c.delivers }

// Handler is a weave.Handler returning preset results.
//
// CheckErr and DeliverErr, when set, are returned instead of the results.
// When Key is set every call first writes Key and Value to the store, which
// lets tests observe whether a failed call was rolled back.
type Handler struct {
	counter

	CheckResult weave.CheckResult
	CheckErr    error

	DeliverResult weave.DeliverResult
	DeliverErr    error

	Key   []byte
	Value []byte
}

var _ weave.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	h.checks++
	if err := h.touch(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	h.delivers++
	if err := h.touch(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) touch(db weave.KVStore) error {
	if len(h.Key) == 0 {
		return nil
	}
	return db.Set(h.Key, h.Value)
}

// Decorator is a weave.Decorator that calls the next handler unless
// CheckErr or DeliverErr is set. Calls are counted even when they fail.
type Decorator struct {
	counter

	CheckErr   error
	DeliverErr error
}

var _ weave.Decorator = (*Decorator)(nil)

func (d *Decorator) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	d.checks++
	if d.CheckErr != nil {
		return nil, d.CheckErr
	}
	return next.Check(ctx, db, tx)
}

func (d *Decorator) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	d.delivers++
	if d.DeliverErr != nil {
		return nil, d.DeliverErr
	}
	return next.Deliver(ctx, db, tx)
}

// Decorate returns a handler calling h through d.
func Decorate(h weave.Handler, d weave.Decorator) weave.Handler {
	return decorated{h: h, d: d}
}

type decorated struct {
	h weave.Handler
	d weave.Decorator
}

func (w decorated) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return w.d.Check(ctx, db, tx, w.h)
}

func (w decorated) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	return w.d.Deliver(ctx, db, tx, w.h)
}
