package deposit

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

const optKey = "deposit"

// GenesisDeposit is a deposit imported when the chain starts. Addresses are
// in hex unless prefixed.
type GenesisDeposit struct {
	LeaseID     string        `json:"lease_id"`
	Tenant      weave.Address `json:"tenant"`
	Landlord    weave.Address `json:"landlord"`
	Amount      int64         `json:"amount"`
	Status      Status        `json:"status"`
	DepositDate int64         `json:"deposit_date"`
	ReleaseDate int64         `json:"release_date"`
}

// Initializer fulfils the Initializer interface to load data from
// the genesis file
type Initializer struct {
	ctrl Controller
}

var _ weave.Initializer = (*Initializer)(nil)

func NewInitializer(ctrl Controller) *Initializer {
	return &Initializer{ctrl: ctrl}
}

// FromGenesis stores all deposits listed in the genesis. Funds of a held
// deposit are issued to the custody account so that every held deposit is
// backed.
func (i *Initializer) FromGenesis(opts weave.Options, kv weave.KVStore) error {
	var deposits []GenesisDeposit
	if err := opts.ReadOptions(optKey, &deposits); err != nil {
		return err
	}
	for n, gd := range deposits {
		if gd.Status == StatusInvalid {
			gd.Status = StatusHeld
		}
		d := &Deposit{
			Metadata:    &weave.Metadata{Schema: 1},
			LeaseID:     gd.LeaseID,
			Tenant:      gd.Tenant,
			Landlord:    gd.Landlord,
			Amount:      gd.Amount,
			Status:      gd.Status,
			DepositDate: gd.DepositDate,
			ReleaseDate: gd.ReleaseDate,
		}
		if err := d.Validate(); err != nil {
			return errors.Wrapf(err, "deposit %d", n)
		}
		switch err := i.ctrl.bucket.Has(kv, []byte(d.LeaseID)); {
		case err == nil:
			return errors.Wrapf(errors.ErrDuplicate, "deposit %d: lease %q", n, d.LeaseID)
		case !errors.ErrNotFound.Is(err):
			return errors.Wrapf(err, "deposit %d", n)
		}
		if err := i.ctrl.bucket.Put(kv, []byte(d.LeaseID), d); err != nil {
			return errors.Wrapf(err, "deposit %d", n)
		}
		if d.Status == StatusHeld {
			if err := i.ctrl.bank.Issue(kv, CustodyAddress(), d.Amount); err != nil {
				return errors.Wrapf(err, "deposit %d: custody", n)
			}
		}
	}
	return nil
}
