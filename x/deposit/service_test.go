package deposit

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest"
)

func TestServiceLifecycle(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.db, f.ctrl)
	ctx := weave.WithHeight(context.Background(), 42)

	require.NoError(t, svc.CreateDeposit(ctx, f.tenant, leaseID, f.landlord, 1000))

	d, err := svc.GetDepositDetails(leaseID)
	require.NoError(t, err)
	assert.Equal(t, int64(42), d.DepositDate)

	err = svc.ReturnToTenant(ctx, f.tenant, leaseID)
	assert.True(t, errors.ErrUnauthorized.Is(err), "%+v", err)

	require.NoError(t, svc.ReturnToTenant(ctx, f.landlord, leaseID))
	err = svc.DisputeDeposit(ctx, f.tenant, leaseID)
	assert.True(t, errors.ErrState.Is(err), "%+v", err)

	b, err := svc.Balance(f.tenant)
	require.NoError(t, err)
	assert.Equal(t, int64(startBalance), b)
}

func TestServiceRequiresHeight(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.db, f.ctrl)

	err := svc.CreateDeposit(context.Background(), f.tenant, leaseID, f.landlord, 1000)
	assert.True(t, errors.ErrHuman.Is(err), "%+v", err)
	f.assertBalances(t, startBalance, startBalance, 0)
}

func TestServiceConcurrentAccess(t *testing.T) {
	f := newFixture(t)
	svc := NewService(f.db, f.ctrl)
	ctx := weave.WithHeight(context.Background(), 1)

	tenants := make([]weave.Address, 8)
	for i := range tenants {
		tenants[i] = weavetest.NewCondition().Address()
		require.NoError(t, f.bank.Issue(f.db, tenants[i], 100))
	}

	// Every tenant tries to escrow its whole balance twice. Only one
	// attempt per tenant can be funded.
	var wg sync.WaitGroup
	results := make(chan error, 2*len(tenants))
	for i, tenant := range tenants {
		for n := 0; n < 2; n++ {
			wg.Add(1)
			go func(tenant weave.Address, lease string) {
				defer wg.Done()
				results <- svc.CreateDeposit(ctx, tenant, lease, f.landlord, 100)
			}(tenant, fmt.Sprintf("lease-%d-%d", i, n))
		}
	}

	// Readers run next to the writers.
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.Balance(f.landlord)
		}()
	}
	wg.Wait()
	close(results)

	var ok, poor int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case errors.ErrInsufficientAmount.Is(err):
			poor++
		default:
			t.Fatalf("unexpected error: %+v", err)
		}
	}
	assert.Equal(t, len(tenants), ok)
	assert.Equal(t, len(tenants), poor)

	custody, err := svc.Balance(CustodyAddress())
	require.NoError(t, err)
	assert.Equal(t, int64(100*len(tenants)), custody)
	for _, tenant := range tenants {
		b, err := svc.Balance(tenant)
		require.NoError(t, err)
		assert.Equal(t, int64(0), b)
	}
}
