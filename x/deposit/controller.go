package deposit

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/orm"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/ledger"
)

// Controller is the deposit state machine. Every transition validates all
// its preconditions before anything is written. The checks run in a fixed
// order: existence, authorization, status and funds. The first failing
// check is returned.
type Controller struct {
	bucket orm.ModelBucket
	bank   ledger.Controller
}

// NewController returns a controller storing deposits in the given bucket
// and moving funds with the given ledger.
func NewController(bucket orm.ModelBucket, bank ledger.Controller) Controller {
	return Controller{bucket: bucket, bank: bank}
}

// transition is a validated change of a single deposit. When amount is
// positive it moves from one account to another.
type transition struct {
	deposit  *Deposit
	from, to weave.Address
	amount   int64
}

// CreateDeposit escrows amount from the sender account for the given lease.
// The sender becomes the tenant.
func (c Controller) CreateDeposit(db weave.KVStore, height int64, sender weave.Address, leaseID string, landlord weave.Address, amount int64) (*Deposit, error) {
	t, err := c.planCreate(db, height, sender, leaseID, landlord, amount)
	if err != nil {
		return nil, err
	}
	return c.apply(db, t)
}

// ReleaseToLandlord pays the escrowed amount to the landlord. Only the
// tenant can release.
func (c Controller) ReleaseToLandlord(db weave.KVStore, height int64, sender weave.Address, leaseID string) (*Deposit, error) {
	t, err := c.planRelease(db, height, sender, leaseID)
	if err != nil {
		return nil, err
	}
	return c.apply(db, t)
}

// ReturnToTenant pays the escrowed amount back to the tenant. Only the
// landlord can return.
func (c Controller) ReturnToTenant(db weave.KVStore, height int64, sender weave.Address, leaseID string) (*Deposit, error) {
	t, err := c.planReturn(db, height, sender, leaseID)
	if err != nil {
		return nil, err
	}
	return c.apply(db, t)
}

// DisputeDeposit marks the deposit as disputed. Funds stay in custody.
func (c Controller) DisputeDeposit(db weave.KVStore, sender weave.Address, leaseID string) (*Deposit, error) {
	t, err := c.planDispute(db, sender, leaseID)
	if err != nil {
		return nil, err
	}
	return c.apply(db, t)
}

// GetDepositDetails returns the deposit of the lease. ErrNotFound is
// returned if there is none, including for ids no deposit could be
// created with.
func (c Controller) GetDepositDetails(db weave.ReadOnlyKVStore, leaseID string) (*Deposit, error) {
	if validateLeaseID(leaseID) != nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "lease %q", leaseID)
	}
	var d Deposit
	if err := c.bucket.One(db, []byte(leaseID), &d); err != nil {
		return nil, errors.Wrapf(err, "lease %q", leaseID)
	}
	return &d, nil
}

// ByTenant returns all deposits funded by the given party.
func (c Controller) ByTenant(db weave.ReadOnlyKVStore, tenant weave.Address) ([]*Deposit, error) {
	return c.byIndex(db, "tenant", tenant)
}

// ByLandlord returns all deposits payable to the given party.
func (c Controller) ByLandlord(db weave.ReadOnlyKVStore, landlord weave.Address) ([]*Deposit, error) {
	return c.byIndex(db, "landlord", landlord)
}

func (c Controller) byIndex(db weave.ReadOnlyKVStore, index string, party weave.Address) ([]*Deposit, error) {
	if err := party.Validate(); err != nil {
		return nil, err
	}
	var found []*Deposit
	if err := c.bucket.ByIndex(db, index, party, &found); err != nil {
		return nil, errors.Wrapf(err, "by %s", index)
	}
	return found, nil
}

func (c Controller) planCreate(db weave.ReadOnlyKVStore, height int64, sender weave.Address, leaseID string, landlord weave.Address, amount int64) (*transition, error) {
	d := &Deposit{
		Metadata:    &weave.Metadata{Schema: 1},
		LeaseID:     leaseID,
		Tenant:      sender,
		Landlord:    landlord,
		Amount:      amount,
		Status:      StatusHeld,
		DepositDate: height,
	}
	if err := d.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid deposit")
	}

	switch err := c.bucket.Has(db, []byte(leaseID)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "lease %q already has a deposit", leaseID)
	case !errors.ErrNotFound.Is(err):
		return nil, err
	}

	balance, err := c.bank.Balance(db, sender)
	if err != nil {
		return nil, err
	}
	if balance < amount {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", balance, amount)
	}
	return &transition{deposit: d, from: sender, to: CustodyAddress(), amount: amount}, nil
}

func (c Controller) planRelease(db weave.ReadOnlyKVStore, height int64, sender weave.Address, leaseID string) (*transition, error) {
	d, err := c.GetDepositDetails(db, leaseID)
	if err != nil {
		return nil, err
	}
	if !sender.Equals(d.Tenant) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the tenant can release")
	}
	if err := requireHeld(d); err != nil {
		return nil, err
	}
	d.Status = StatusReleased
	d.ReleaseDate = height
	return &transition{deposit: d, from: CustodyAddress(), to: d.Landlord, amount: d.Amount}, nil
}

func (c Controller) planReturn(db weave.ReadOnlyKVStore, height int64, sender weave.Address, leaseID string) (*transition, error) {
	d, err := c.GetDepositDetails(db, leaseID)
	if err != nil {
		return nil, err
	}
	if !sender.Equals(d.Landlord) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only the landlord can return")
	}
	if err := requireHeld(d); err != nil {
		return nil, err
	}
	d.Status = StatusReleased
	d.ReleaseDate = height
	return &transition{deposit: d, from: CustodyAddress(), to: d.Tenant, amount: d.Amount}, nil
}

func (c Controller) planDispute(db weave.ReadOnlyKVStore, sender weave.Address, leaseID string) (*transition, error) {
	d, err := c.GetDepositDetails(db, leaseID)
	if err != nil {
		return nil, err
	}
	if !sender.Equals(d.Tenant) && !sender.Equals(d.Landlord) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "only a lease party can dispute")
	}
	if err := requireHeld(d); err != nil {
		return nil, err
	}
	d.Status = StatusDisputed
	d.ReleaseDate = 0
	return &transition{deposit: d}, nil
}

func requireHeld(d *Deposit) error {
	if d.Status.Final() {
		return errors.Wrapf(errors.ErrState, "deposit is %s", d.Status)
	}
	return nil
}

// apply writes a validated transition. The ledger transfer validates both
// accounts before writing, so a failure leaves the store untouched.
func (c Controller) apply(db weave.KVStore, t *transition) (*Deposit, error) {
	if err := t.deposit.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid deposit")
	}
	if t.amount > 0 {
		if err := c.bank.Transfer(db, t.from, t.to, t.amount); err != nil {
			return nil, errors.Wrap(err, "cannot move funds")
		}
	}
	if err := c.bucket.Put(db, []byte(t.deposit.LeaseID), t.deposit); err != nil {
		return nil, errors.Wrap(err, "cannot store deposit")
	}
	return t.deposit, nil
}
