package sigs

import (
	"context"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/crypto"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signersHandler records who signed the last transaction it handled.
type signersHandler struct {
	signers []weave.Condition
}

func (h *signersHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	h.signers = Authenticate{}.GetConditions(ctx)
	return &weave.CheckResult{GasAllocated: 10}, nil
}

func (h *signersHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	h.signers = Authenticate{}.GetConditions(ctx)
	return &weave.DeliverResult{}, nil
}

func TestDecorator(t *testing.T) {
	const chainID = "lease-chain-1"
	ctx := weave.WithChainID(context.Background(), chainID)
	db := store.MemStore()
	key := crypto.GenPrivKeyEd25519()
	h := &signersHandler{}

	tx := &signedTx{payload: []byte("dispute lease-9")}
	sign(t, tx, key, chainID, 0)

	res, err := NewDecorator().Check(ctx, db.CacheWrap(), tx, h)
	require.NoError(t, err)
	assert.Equal(t, int64(10+verifyCost), res.GasAllocated)
	assert.Equal(t, []weave.Condition{key.PublicKey().Condition()}, h.signers)

	h.signers = nil
	_, err = NewDecorator().Deliver(ctx, db, tx, h)
	require.NoError(t, err)
	assert.Equal(t, []weave.Condition{key.PublicKey().Condition()}, h.signers)
	signed := context.WithValue(ctx, signersKey, h.signers)
	assert.True(t, Authenticate{}.HasAddress(signed, key.PublicKey().Address()))

	// delivering the same transaction twice fails on the sequence
	_, err = NewDecorator().Deliver(ctx, db, tx, h)
	assert.True(t, ErrInvalidSequence.Is(err), "got %v", err)
}

func TestDecoratorMissingSignature(t *testing.T) {
	ctx := weave.WithChainID(context.Background(), "lease-chain-1")
	db := store.MemStore()
	h := &signersHandler{}
	unsigned := &signedTx{payload: []byte("send 10")}

	_, err := NewDecorator().Check(ctx, db, unsigned, h)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)
	_, err = NewDecorator().Deliver(ctx, db, unsigned, h)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)

	_, err = NewDecorator().AllowMissingSigs().Deliver(ctx, db, unsigned, h)
	require.NoError(t, err)
	assert.Empty(t, h.signers)

	// a transaction that cannot carry signatures is passed on
	var counter weavetest.Handler
	_, err = NewDecorator().Deliver(ctx, db, &weavetest.Tx{}, &counter)
	require.NoError(t, err)
	assert.Equal(t, 1, counter.DeliverCallCount())
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	addr := crypto.GenPrivKeyEd25519().PublicKey().Address()

	var auth Authenticate
	assert.Empty(t, auth.GetConditions(ctx))
	assert.False(t, auth.HasAddress(ctx, addr))
}
