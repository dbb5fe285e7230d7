package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest"
)

func TestSendHandler(t *testing.T) {
	alice := weavetest.NewCondition()
	bob := weavetest.NewCondition()

	send := func(from, to weave.Condition, amount int64) *SendMsg {
		return &SendMsg{
			Metadata:    &weave.Metadata{Schema: 1},
			Source:      from.Address(),
			Destination: to.Address(),
			Amount:      amount,
			Memo:        "rent top up",
		}
	}

	cases := map[string]struct {
		signer    weave.Condition
		msg       weave.Msg
		wantErr   *errors.Error
		wantAlice int64
		wantBob   int64
	}{
		"owner sends": {
			signer:    alice,
			msg:       send(alice, bob, 2500),
			wantAlice: 7500,
			wantBob:   12500,
		},
		"someone else signed": {
			signer:    bob,
			msg:       send(alice, bob, 2500),
			wantErr:   errors.ErrUnauthorized,
			wantAlice: 10000,
			wantBob:   10000,
		},
		"not enough funds": {
			signer:    alice,
			msg:       send(alice, bob, 10001),
			wantErr:   errors.ErrInsufficientAmount,
			wantAlice: 10000,
			wantBob:   10000,
		},
		"invalid message": {
			signer:    alice,
			msg:       send(alice, bob, 0),
			wantErr:   errors.ErrAmount,
			wantAlice: 10000,
			wantBob:   10000,
		},
		"unknown message": {
			signer:    alice,
			msg:       &weavetest.Msg{RoutePath: pathSendMsg},
			wantErr:   errors.ErrType,
			wantAlice: 10000,
			wantBob:   10000,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			ctrl := NewController(NewAccountBucket())
			require.NoError(t, ctrl.Issue(db, alice.Address(), 10000))
			require.NoError(t, ctrl.Issue(db, bob.Address(), 10000))

			h := NewSendHandler(&weavetest.Auth{Signer: tc.signer}, ctrl)
			tx := &weavetest.Tx{Msg: tc.msg}

			cache := db.CacheWrap()
			_, err := h.Check(context.Background(), cache, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected check error: %+v", err)
			}
			cache.Discard()

			_, err = h.Deliver(context.Background(), db, tx)
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected deliver error: %+v", err)
			}

			assertBalance(t, ctrl, db, alice.Address(), tc.wantAlice)
			assertBalance(t, ctrl, db, bob.Address(), tc.wantBob)
		})
	}
}

func TestAccountQuery(t *testing.T) {
	db := store.MemStore()
	ctrl := NewController(NewAccountBucket())
	party := weavetest.NewCondition().Address()
	require.NoError(t, ctrl.Issue(db, party, 77))

	qr := weave.NewQueryRouter()
	RegisterQuery(qr)
	h := qr.Handler("/accounts")
	require.NotNil(t, h)

	res, err := h.Query(db, weave.KeyQueryMod, party)
	require.NoError(t, err)
	require.Len(t, res, 1)

	var acc Account
	require.NoError(t, acc.Unmarshal(res[0].Value))
	assert.Equal(t, int64(77), acc.Balance)
}
