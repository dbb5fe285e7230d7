package ledger

import (
	"math"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/orm"
)

// Controller is the functionality needed by other extensions to read and
// move balances. Every mutating method either succeeds as a whole or
// writes nothing.
type Controller interface {
	// Balance returns the current balance of the party, zero for unknown
	// parties.
	Balance(db weave.ReadOnlyKVStore, party weave.Address) (int64, error)

	// Debit decreases the balance of the party. It fails with
	// ErrInsufficientAmount if the balance is lower than amount.
	Debit(db weave.KVStore, party weave.Address, amount int64) error

	// Credit increases the balance of the party. It fails with
	// ErrOverflow if the new balance cannot be represented.
	Credit(db weave.KVStore, party weave.Address, amount int64) error

	// Transfer moves amount from one party to another one. Both
	// operations are validated before anything is written.
	Transfer(db weave.KVStore, from, to weave.Address, amount int64) error

	// Issue creates new value on the party account. It is only meant to
	// be used when loading the genesis state.
	Issue(db weave.KVStore, party weave.Address, amount int64) error
}

// BaseController is the default Controller implementation, storing
// accounts in the given bucket.
type BaseController struct {
	bucket orm.ModelBucket
}

var _ Controller = BaseController{}

// NewController returns a controller that is using given bucket to store
// accounts.
func NewController(bucket orm.ModelBucket) BaseController {
	return BaseController{bucket: bucket}
}

func (c BaseController) Balance(db weave.ReadOnlyKVStore, party weave.Address) (int64, error) {
	if err := party.Validate(); err != nil {
		return 0, errors.Wrap(err, "party")
	}
	acc, err := c.account(db, party)
	if err != nil {
		return 0, err
	}
	return acc.Balance, nil
}

func (c BaseController) Debit(db weave.KVStore, party weave.Address, amount int64) error {
	acc, err := c.debited(db, party, amount)
	if err != nil {
		return err
	}
	return c.save(db, party, acc)
}

func (c BaseController) Credit(db weave.KVStore, party weave.Address, amount int64) error {
	acc, err := c.credited(db, party, amount)
	if err != nil {
		return err
	}
	return c.save(db, party, acc)
}

func (c BaseController) Transfer(db weave.KVStore, from, to weave.Address, amount int64) error {
	src, err := c.debited(db, from, amount)
	if err != nil {
		return errors.Wrap(err, "source")
	}
	if from.Equals(to) {
		// Nothing moves, but the source was proven to be able to pay.
		return nil
	}
	dst, err := c.credited(db, to, amount)
	if err != nil {
		return errors.Wrap(err, "destination")
	}

	if err := c.save(db, from, src); err != nil {
		return err
	}
	return c.save(db, to, dst)
}

func (c BaseController) Issue(db weave.KVStore, party weave.Address, amount int64) error {
	if amount < 0 {
		return errors.Wrapf(errors.ErrAmount, "cannot issue %d", amount)
	}
	if err := party.Validate(); err != nil {
		return errors.Wrap(err, "party")
	}
	acc, err := c.account(db, party)
	if err != nil {
		return err
	}
	if acc.Balance > math.MaxInt64-amount {
		return errors.Wrap(errors.ErrOverflow, "balance")
	}
	acc.Balance += amount
	return c.save(db, party, acc)
}

// debited returns the party account with amount subtracted. Nothing is
// written.
func (c BaseController) debited(db weave.ReadOnlyKVStore, party weave.Address, amount int64) (*Account, error) {
	if amount <= 0 {
		return nil, errors.Wrapf(errors.ErrAmount, "non positive amount %d", amount)
	}
	if err := party.Validate(); err != nil {
		return nil, errors.Wrap(err, "party")
	}
	acc, err := c.account(db, party)
	if err != nil {
		return nil, err
	}
	if acc.Balance < amount {
		return nil, errors.Wrapf(errors.ErrInsufficientAmount, "balance %d, required %d", acc.Balance, amount)
	}
	acc.Balance -= amount
	return acc, nil
}

// credited returns the party account with amount added. Nothing is
// written.
func (c BaseController) credited(db weave.ReadOnlyKVStore, party weave.Address, amount int64) (*Account, error) {
	if amount <= 0 {
		return nil, errors.Wrapf(errors.ErrAmount, "non positive amount %d", amount)
	}
	if err := party.Validate(); err != nil {
		return nil, errors.Wrap(err, "party")
	}
	acc, err := c.account(db, party)
	if err != nil {
		return nil, err
	}
	if acc.Balance > math.MaxInt64-amount {
		return nil, errors.Wrap(errors.ErrOverflow, "balance")
	}
	acc.Balance += amount
	return acc, nil
}

// account loads the party account. A missing account is returned as a new
// account with zero balance.
func (c BaseController) account(db weave.ReadOnlyKVStore, party weave.Address) (*Account, error) {
	var acc Account
	switch err := c.bucket.One(db, party, &acc); {
	case err == nil:
		return &acc, nil
	case errors.ErrNotFound.Is(err):
		return &Account{Metadata: &weave.Metadata{Schema: 1}}, nil
	default:
		return nil, errors.Wrap(err, "cannot load account")
	}
}

func (c BaseController) save(db weave.KVStore, party weave.Address, acc *Account) error {
	if err := c.bucket.Put(db, party, acc); err != nil {
		return errors.Wrap(err, "cannot save account")
	}
	return nil
}
