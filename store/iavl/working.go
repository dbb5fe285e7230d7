package iavl

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	"github.com/tendermint/iavl"
)

// working is the KVStore view of a mutable tree. Nil keys panic.
type working struct {
	tree *iavl.MutableTree
}

var _ store.KVStore = working{}

func (w working) Get(key []byte) ([]byte, error) {
	_, value := w.tree.Get(key)
	return value, nil
}

func (w working) Has(key []byte) (bool, error) {
	return w.tree.Has(key), nil
}

func (w working) Set(key, value []byte) error {
	w.tree.Set(key, value)
	return nil
}

func (w working) Delete(key []byte) error {
	w.tree.Remove(key)
	return nil
}

func (w working) Iterator(start, end []byte) (store.Iterator, error) {
	return w.load(start, end, true), nil
}

func (w working) ReverseIterator(start, end []byte) (store.Iterator, error) {
	return w.load(start, end, false), nil
}

// load copies the range into memory, so the tree may be written while
// the iterator is open.
func (w working) load(start, end []byte, ascending bool) store.Iterator {
	var models []store.Model
	w.tree.IterateRange(start, end, ascending, func(key, value []byte) bool {
		models = append(models, store.Pair(key, value))
		return false
	})
	return store.NewSliceIterator(models)
}
