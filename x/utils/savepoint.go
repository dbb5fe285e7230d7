package utils

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// Savepoint runs the rest of the stack on a cache wrapped store. The
// cache is written back only if the handler succeeded, so a failed
// deposit operation never leaves a half moved balance behind.
//
// A zero Savepoint does nothing. Enable it for CheckTx, DeliverTx or
// both with OnCheck and OnDeliver.
type Savepoint struct {
	check, deliver bool
}

var _ weave.Decorator = Savepoint{}

func NewSavepoint() Savepoint { return Savepoint{} }

func (s Savepoint) OnCheck() Savepoint {
	s.check = true
	return s
}

func (s Savepoint) OnDeliver() Savepoint {
	s.deliver = true
	return s
}

func (s Savepoint) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Checker) (*weave.CheckResult, error) {
	var res *weave.CheckResult
	err := isolate(s.check, db, func(db weave.KVStore) (err error) {
		res, err = next.Check(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s Savepoint) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx, next weave.Deliverer) (*weave.DeliverResult, error) {
	var res *weave.DeliverResult
	err := isolate(s.deliver, db, func(db weave.KVStore) (err error) {
		res, err = next.Deliver(ctx, db, tx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// isolate calls fn with a cache over db when enabled and the store
// supports caching. Otherwise fn works on db directly.
func isolate(enabled bool, db weave.KVStore, fn func(weave.KVStore) error) error {
	cacheable, ok := db.(weave.CacheableKVStore)
	if !enabled || !ok {
		return fn(db)
	}
	cache := cacheable.CacheWrap()
	if err := fn(cache); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(err, "savepoint write")
	}
	return nil
}
