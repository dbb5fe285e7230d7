package deposit

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/ledger"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"deposit": [
			{
				"lease_id": "lease123",
				"tenant": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
				"landlord": "AA8AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
				"amount": 1000,
				"deposit_date": 4
			},
			{
				"lease_id": "lease124",
				"tenant": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
				"landlord": "AA8AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
				"amount": 500,
				"status": "released",
				"deposit_date": 4,
				"release_date": 8
			},
			{
				"lease_id": "lease125",
				"tenant": "AA8AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
				"landlord": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
				"amount": 250,
				"status": "disputed",
				"deposit_date": 6
			}
		]
	}`

	var opts weave.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	bank := ledger.NewController(ledger.NewAccountBucket())
	ctrl := NewController(NewBucket(), bank)
	require.NoError(t, NewInitializer(ctrl).FromGenesis(opts, db))

	d, err := ctrl.GetDepositDetails(db, "lease123")
	require.NoError(t, err)
	assert.Equal(t, StatusHeld, d.Status)
	assert.Equal(t, int64(4), d.DepositDate)

	d, err = ctrl.GetDepositDetails(db, "lease124")
	require.NoError(t, err)
	assert.Equal(t, StatusReleased, d.Status)
	assert.Equal(t, int64(8), d.ReleaseDate)

	d, err = ctrl.GetDepositDetails(db, "lease125")
	require.NoError(t, err)
	assert.Equal(t, StatusDisputed, d.Status)

	// Only the held deposit is backed by custody.
	custody, err := bank.Balance(db, CustodyAddress())
	require.NoError(t, err)
	assert.Equal(t, int64(1000), custody)
}

func TestGenesisInvalid(t *testing.T) {
	const (
		tenant   = "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"
		landlord = "AA8AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0"
	)
	cases := map[string]struct {
		genesis string
		wantErr *errors.Error
	}{
		"duplicated lease": {
			genesis: `{"deposit": [
				{"lease_id": "a1", "tenant": "` + tenant + `", "landlord": "` + landlord + `", "amount": 1},
				{"lease_id": "a1", "tenant": "` + tenant + `", "landlord": "` + landlord + `", "amount": 2}
			]}`,
			wantErr: errors.ErrDuplicate,
		},
		"unknown status": {
			genesis: `{"deposit": [{"lease_id": "a1", "tenant": "` + tenant + `", "landlord": "` + landlord + `", "amount": 1, "status": "lost"}]}`,
			wantErr: errors.ErrInput,
		},
		"release date of a held deposit": {
			genesis: `{"deposit": [{"lease_id": "a1", "tenant": "` + tenant + `", "landlord": "` + landlord + `", "amount": 1, "release_date": 3}]}`,
			wantErr: errors.ErrInput,
		},
		"zero amount": {
			genesis: `{"deposit": [{"lease_id": "a1", "tenant": "` + tenant + `", "landlord": "` + landlord + `"}]}`,
			wantErr: errors.ErrAmount,
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			var opts weave.Options
			require.NoError(t, json.Unmarshal([]byte(tc.genesis), &opts))
			ctrl := NewController(NewBucket(), ledger.NewController(ledger.NewAccountBucket()))
			err := NewInitializer(ctrl).FromGenesis(opts, store.MemStore())
			if !tc.wantErr.Is(err) {
				t.Fatalf("unexpected error: %+v", err)
			}
		})
	}
}

// failingHas reports a storage failure on every existence check.
type failingHas struct {
	weave.KVStore
}

func (failingHas) Has([]byte) (bool, error) {
	return false, errors.Wrap(errors.ErrDatabase, "disk gone")
}

func TestGenesisStorageFailure(t *testing.T) {
	const genesis = `{"deposit": [{
		"lease_id": "a1",
		"tenant": "E28AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"landlord": "AA8AE9A6EB94FC88B73EB7CBD6B87BF93EB9BEF0",
		"amount": 1
	}]}`
	var opts weave.Options
	require.NoError(t, json.Unmarshal([]byte(genesis), &opts))

	db := store.MemStore()
	ctrl := NewController(NewBucket(), ledger.NewController(ledger.NewAccountBucket()))
	err := NewInitializer(ctrl).FromGenesis(opts, failingHas{db})
	assert.True(t, errors.ErrDatabase.Is(err), "%+v", err)

	_, err = ctrl.GetDepositDetails(db, "a1")
	assert.True(t, errors.ErrNotFound.Is(err), "%+v", err)
}
