package ledger

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

const optKey = "ledger"

// GenesisAccount is used to parse the json from genesis file
// use weave.Address, so address in hex, not base64
type GenesisAccount struct {
	Address weave.Address `json:"address"`
	Balance int64         `json:"balance"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct {
	control Controller
}

var _ weave.Initializer = (*Initializer)(nil)

// NewInitializer returns a genesis initializer issuing balances through
// the given controller.
func NewInitializer(control Controller) *Initializer {
	return &Initializer{control: control}
}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (i *Initializer) FromGenesis(opts weave.Options, kv weave.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	for n, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", n)
		}
		if err := i.control.Issue(kv, acct.Address, acct.Balance); err != nil {
			return errors.Wrapf(err, "account %d", n)
		}
	}
	return nil
}
