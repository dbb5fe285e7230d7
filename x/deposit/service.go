package deposit

import (
	"sync"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// Service exposes the deposit registry to in-process callers that do not
// go through the ABCI application. Writers are serialized and every
// operation runs in its own cache wrap that is written only on success.
type Service struct {
	mu   sync.RWMutex
	db   weave.CacheableKVStore
	ctrl Controller
}

// NewService returns a service operating on the given store.
func NewService(db weave.CacheableKVStore, ctrl Controller) *Service {
	return &Service{db: db, ctrl: ctrl}
}

// CreateDeposit escrows amount from the sender for the lease. The height
// is taken from the context.
func (s *Service) CreateDeposit(ctx weave.Context, sender weave.Address, leaseID string, landlord weave.Address, amount int64) error {
	return s.update(ctx, func(db weave.KVStore, height int64) error {
		_, err := s.ctrl.CreateDeposit(db, height, sender, leaseID, landlord, amount)
		return err
	})
}

// ReleaseToLandlord pays a held deposit to the landlord.
func (s *Service) ReleaseToLandlord(ctx weave.Context, sender weave.Address, leaseID string) error {
	return s.update(ctx, func(db weave.KVStore, height int64) error {
		_, err := s.ctrl.ReleaseToLandlord(db, height, sender, leaseID)
		return err
	})
}

// ReturnToTenant pays a held deposit back to the tenant.
func (s *Service) ReturnToTenant(ctx weave.Context, sender weave.Address, leaseID string) error {
	return s.update(ctx, func(db weave.KVStore, height int64) error {
		_, err := s.ctrl.ReturnToTenant(db, height, sender, leaseID)
		return err
	})
}

// DisputeDeposit locks a held deposit in custody.
func (s *Service) DisputeDeposit(ctx weave.Context, sender weave.Address, leaseID string) error {
	return s.update(ctx, func(db weave.KVStore, _ int64) error {
		_, err := s.ctrl.DisputeDeposit(db, sender, leaseID)
		return err
	})
}

// GetDepositDetails returns a copy of the lease deposit.
func (s *Service) GetDepositDetails(leaseID string) (*Deposit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctrl.GetDepositDetails(s.db, leaseID)
}

// Balance returns the ledger balance of the party.
func (s *Service) Balance(party weave.Address) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ctrl.bank.Balance(s.db, party)
}

func (s *Service) update(ctx weave.Context, fn func(weave.KVStore, int64) error) error {
	height, err := blockHeight(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cache := s.db.CacheWrap()
	if err := fn(cache, height); err != nil {
		cache.Discard()
		return err
	}
	if err := cache.Write(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}
