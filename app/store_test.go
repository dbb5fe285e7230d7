package app

import (
	"bytes"
	"context"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store/iavl"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
)

const itemPrefix = "item:"

// itemQuery exposes all keys stored with the item prefix.
type itemQuery struct{}

func (itemQuery) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	if mod != weave.PrefixQueryMod {
		key := append([]byte(itemPrefix), data...)
		val, err := db.Get(key)
		if err != nil || val == nil {
			return nil, err
		}
		return []weave.Model{weave.Pair(data, val)}, nil
	}

	start := append([]byte(itemPrefix), data...)
	it, err := db.Iterator(start, nil)
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var res []weave.Model
	for it.Valid() && bytes.HasPrefix(it.Key(), start) {
		res = append(res, weave.Pair(it.Key()[len(itemPrefix):], it.Value()))
		if err := it.Next(); err != nil {
			return nil, err
		}
	}
	return res, nil
}

func itemInitializer() weave.Initializer {
	return weave.GenesisInitializer(func(opts weave.Options, db weave.KVStore) error {
		var items map[string]string
		if err := opts.ReadOptions("items", &items); err != nil {
			return err
		}
		for k, v := range items {
			if err := db.Set([]byte(itemPrefix+k), []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

func newItemApp(t *testing.T) *StoreApp {
	t.Helper()
	qr := weave.NewQueryRouter()
	qr.Register("/items", itemQuery{})
	return NewStoreApp("leased-test", iavl.NewMemCommitStore(), qr, context.Background()).
		WithInit(itemInitializer())
}

func TestStoreAppGenesis(t *testing.T) {
	app := newItemApp(t)
	assert.Equal(t, "", app.GetChainID())

	app.InitChain(abci.RequestInitChain{
		ChainId:       "lease-chain-7",
		AppStateBytes: []byte(`{"items": {"a": "1", "b": "2"}}`),
	})
	assert.Equal(t, "lease-chain-7", app.GetChainID())
	assert.Equal(t, "lease-chain-7", weave.GetChainID(app.BlockContext()))

	// genesis can be loaded only once
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{
			ChainId:       "lease-chain-8",
			AppStateBytes: []byte(`{}`),
		})
	})

	res := app.Commit()
	assert.NotEmpty(t, res.Data)
	info := app.Info(abci.RequestInfo{})
	assert.Equal(t, int64(1), info.LastBlockHeight)
	assert.Equal(t, "leased-test", info.Data)

	q := app.Query(abci.RequestQuery{Path: "/items", Data: []byte("a")})
	require.Equal(t, uint32(0), q.Code, q.Log)
	var values ResultSet
	require.NoError(t, values.Unmarshal(q.Value))
	assert.Equal(t, [][]byte{[]byte("1")}, values.Results)

	q = app.Query(abci.RequestQuery{Path: "/unknown"})
	assert.Equal(t, errors.ErrNotFound.ABCICode(), q.Code)
}

func TestStoreAppRequiresAppState(t *testing.T) {
	app := newItemApp(t)
	assert.Panics(t, func() {
		app.InitChain(abci.RequestInitChain{ChainId: "lease-chain-7"})
	})
}

func TestBaseAppDeliver(t *testing.T) {
	store := newItemApp(t)
	store.InitChain(abci.RequestInitChain{
		ChainId:       "lease-chain-7",
		AppStateBytes: []byte(`{"items": {"a": "1"}}`),
	})
	store.Commit()

	h := &weavetest.Handler{
		Key:   []byte(itemPrefix + "c"),
		Value: []byte("3"),
	}
	decoder := func(raw []byte) (weave.Tx, error) {
		if len(raw) == 0 {
			panic("empty transaction")
		}
		return &weavetest.Tx{Msg: &weavetest.Msg{RoutePath: "test/item"}}, nil
	}
	base := NewBaseApp(store, decoder, h, false)

	base.BeginBlock(abci.RequestBeginBlock{Header: abci.Header{Height: 2}})
	h2, _ := weave.GetHeight(base.BlockContext())
	assert.Equal(t, int64(2), h2)

	check := base.CheckTx([]byte("tx"))
	assert.Equal(t, uint32(0), check.Code, check.Log)
	deliver := base.DeliverTx([]byte("tx"))
	assert.Equal(t, uint32(0), deliver.Code, deliver.Log)
	assert.Equal(t, 2, h.CallCount())

	// a decoder panic is reported as a failed transaction
	assert.NotEqual(t, uint32(0), base.DeliverTx(nil).Code)

	// nothing is visible before the block is committed
	abciStore := NewABCIStore(base, "/items")
	val, err := abciStore.Get([]byte("c"))
	require.NoError(t, err)
	assert.Nil(t, val)

	base.Commit()

	val, err = abciStore.Get([]byte("c"))
	require.NoError(t, err)
	assert.Equal(t, []byte("3"), val)

	ok, err := abciStore.Has([]byte("missing"))
	require.NoError(t, err)
	assert.False(t, ok)

	it, err := abciStore.Iterator(nil, nil)
	require.NoError(t, err)
	var keys []string
	for it.Valid() {
		keys = append(keys, string(it.Key()))
		require.NoError(t, it.Next())
	}
	assert.Equal(t, []string{"a", "c"}, keys)

	_, err = abciStore.Iterator([]byte("a"), nil)
	assert.True(t, errors.ErrHuman.Is(err))
}
