package app

import (
	"reflect"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
)

// Decorators is an ordered list of middlewares that still waits for the
// handler it wraps. The first decorator sees every transaction first.
//
//	app.ChainDecorators(
//		utils.NewLogging(),
//		utils.NewRecovery(),
//		sigs.NewDecorator(),
//	).WithHandler(router)
type Decorators struct {
	list []weave.Decorator
}

// ChainDecorators starts a new stack. Nil decorators, including typed nil
// pointers, are dropped so optional middlewares can be passed unconditionally.
func ChainDecorators(ds ...weave.Decorator) Decorators {
	return Decorators{}.Chain(ds...)
}

// Chain returns a copy of the stack with ds appended at the bottom.
func (d Decorators) Chain(ds ...weave.Decorator) Decorators {
	list := make([]weave.Decorator, 0, len(d.list)+len(ds))
	list = append(list, d.list...)
	for _, dec := range ds {
		if !isNilDecorator(dec) {
			list = append(list, dec)
		}
	}
	return Decorators{list: list}
}

func isNilDecorator(d weave.Decorator) bool {
	if d == nil {
		return true
	}
	v := reflect.ValueOf(d)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// WithHandler closes the stack over h.
func (d Decorators) WithHandler(h weave.Handler) weave.Handler {
	for i := len(d.list); i > 0; i-- {
		h = layer{dec: d.list[i-1], inner: h}
	}
	return h
}

// layer binds one decorator to everything below it.
type layer struct {
	dec   weave.Decorator
	inner weave.Handler
}

func (l layer) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	return l.dec.Check(ctx, db, tx, l.inner)
}

func (l layer) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	return l.dec.Deliver(ctx, db, tx, l.inner)
}
