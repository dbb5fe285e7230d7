package app

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ABCIStore reads a single query path of an application through the
// ABCI query interface, the same way a client would. Keys are the keys
// of the bucket behind the path.
type ABCIStore struct {
	app  abci.Application
	path string
}

var _ weave.ReadOnlyKVStore = (*ABCIStore)(nil)

func NewABCIStore(app abci.Application, path string) *ABCIStore {
	return &ABCIStore{app: app, path: path}
}

func (a *ABCIStore) Get(key []byte) ([]byte, error) {
	models, err := a.fetch(a.path, key)
	if err != nil {
		return nil, err
	}
	switch len(models) {
	case 0:
		return nil, nil
	case 1:
		return models[0].Value, nil
	}
	return nil, errors.Wrapf(errors.ErrDatabase, "%d results for a single key", len(models))
}

func (a *ABCIStore) Has(key []byte) (bool, error) {
	v, err := a.Get(key)
	return v != nil, err
}

// Iterator supports only the full range, a query knows nothing narrower
// than a prefix.
func (a *ABCIStore) Iterator(start, end []byte) (weave.Iterator, error) {
	return a.scan(start, end, false)
}

func (a *ABCIStore) ReverseIterator(start, end []byte) (weave.Iterator, error) {
	return a.scan(start, end, true)
}

func (a *ABCIStore) scan(start, end []byte, reverse bool) (weave.Iterator, error) {
	if start != nil || end != nil {
		return nil, errors.Wrap(errors.ErrHuman, "only the entire range can be iterated")
	}
	models, err := a.fetch(a.path+"?"+weave.PrefixQueryMod, nil)
	if err != nil {
		return nil, err
	}
	if reverse {
		for i, j := 0, len(models)-1; i < j; i, j = i+1, j-1 {
			models[i], models[j] = models[j], models[i]
		}
	}
	return store.NewSliceIterator(models), nil
}

func (a *ABCIStore) fetch(path string, data []byte) ([]weave.Model, error) {
	res := a.app.Query(abci.RequestQuery{Path: path, Data: data})
	if res.Code != 0 {
		return nil, errors.Wrapf(errors.ErrDatabase, "query %s: code %d: %s", path, res.Code, res.Log)
	}
	var keys, values ResultSet
	if err := keys.Unmarshal(res.Key); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "result keys")
	}
	if err := values.Unmarshal(res.Value); err != nil {
		return nil, errors.Wrap(errors.ErrDatabase, "result values")
	}
	return JoinResults(&keys, &values)
}
