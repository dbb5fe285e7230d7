package ledger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"ledger": [
			{"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "balance": 10000},
			{"address": "cond:deposit/custody/657363726f77", "balance": 0},
			{"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "balance": 5}
		]
	}`

	var opts weave.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	ctrl := NewController(NewAccountBucket())
	require.NoError(t, NewInitializer(ctrl).FromGenesis(opts, db))

	addr, err := weave.ParseAddress("E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0")
	require.NoError(t, err)
	assertBalance(t, ctrl, db, addr, 10005)

	custody := weave.NewCondition("deposit", "custody", []byte("escrow")).Address()
	assertBalance(t, ctrl, db, custody, 0)
}

func TestGenesisInvalid(t *testing.T) {
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"negative balance": {
			genesis: `{"ledger": [{"address": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0", "balance": -1}]}`,
			wantErr: errors.ErrAmount,
		},
		"missing address": {
			genesis: `{"ledger": [{"balance": 1}]}`,
			wantErr: errors.ErrInput,
		},
		"malformed": {
			genesis: `{"ledger": {"balance": 1}}`,
			wantErr: errors.ErrInput,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts weave.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))
			err := NewInitializer(NewController(NewAccountBucket())).FromGenesis(opts, store.MemStore())
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}
