package weavetest

import (
	"context"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest/assert"
)

func TestHandler(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()

	h := Handler{
		CheckResult:   weave.CheckResult{GasAllocated: 7},
		DeliverResult: weave.DeliverResult{Data: []byte("lease-1")},
		Key:           []byte("touched"),
		Value:         []byte("yes"),
	}
	cres, err := h.Check(ctx, db, &Tx{})
	assert.Nil(t, err)
	assert.Equal(t, int64(7), cres.GasAllocated)

	dres, err := h.Deliver(ctx, db, &Tx{})
	assert.Nil(t, err)
	assert.Equal(t, []byte("lease-1"), dres.Data)

	v, err := db.Get([]byte("touched"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("yes"), v)

	h.DeliverErr = errors.ErrState
	_, err = h.Deliver(ctx, db, &Tx{})
	assert.IsErr(t, errors.ErrState, err)

	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 2, h.DeliverCallCount())
	assert.Equal(t, 3, h.CallCount())
}

func TestDecorator(t *testing.T) {
	ctx := context.Background()
	db := store.MemStore()

	var (
		h Handler
		d Decorator
	)
	wrapped := Decorate(&h, &d)

	_, err := wrapped.Check(ctx, db, &Tx{})
	assert.Nil(t, err)
	_, err = wrapped.Deliver(ctx, db, &Tx{})
	assert.Nil(t, err)

	d.CheckErr = errors.ErrUnauthorized
	_, err = wrapped.Check(ctx, db, &Tx{})
	assert.IsErr(t, errors.ErrUnauthorized, err)

	// a failing decorator never reaches the handler
	assert.Equal(t, 2, d.CheckCallCount())
	assert.Equal(t, 1, h.CheckCallCount())
	assert.Equal(t, 1, d.DeliverCallCount())
	assert.Equal(t, 2, h.CallCount())
}
