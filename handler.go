package weave

import (
	"encoding/json"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// Checker validates a transaction in CheckTx without persisting changes.
type Checker interface {
	Check(ctx Context, db KVStore, tx Tx) (*CheckResult, error)
}

// Deliverer executes a transaction in DeliverTx.
type Deliverer interface {
	Deliver(ctx Context, db KVStore, tx Tx) (*DeliverResult, error)
}

// Handler processes the messages of one path, for example the release
// of a deposit.
type Handler interface {
	Checker
	Deliverer
}

// Decorator runs around the next handler of a stack, for example to
// authenticate signers or recover from panics.
type Decorator interface {
	Check(ctx Context, db KVStore, tx Tx, next Checker) (*CheckResult, error)
	Deliver(ctx Context, db KVStore, tx Tx, next Deliverer) (*DeliverResult, error)
}

// Registry binds message paths to handlers.
type Registry interface {
	Handle(path string, h Handler)
}

// Options is the app_state of the genesis file, split by extension name.
type Options map[string]json.RawMessage

// ReadOptions decodes the section key into obj. A missing section leaves
// obj untouched.
func (o Options) ReadOptions(key string, obj interface{}) error {
	raw, ok := o[key]
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, obj); err != nil {
		return errors.Wrapf(errors.ErrInput, "genesis %q: %s", key, err)
	}
	return nil
}

// Initializer loads the genesis state of an extension.
type Initializer interface {
	FromGenesis(Options, KVStore) error
}

// GenesisInitializer turns a function into an Initializer.
type GenesisInitializer func(Options, KVStore) error

func (fn GenesisInitializer) FromGenesis(opts Options, db KVStore) error {
	return fn(opts, db)
}

// ChainInitializers runs the initializers in order and stops at the
// first failure.
func ChainInitializers(inits ...Initializer) Initializer {
	return GenesisInitializer(func(opts Options, db KVStore) error {
		for _, i := range inits {
			if err := i.FromGenesis(opts, db); err != nil {
				return err
			}
		}
		return nil
	})
}
