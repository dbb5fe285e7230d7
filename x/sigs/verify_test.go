package sigs

import (
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/crypto"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// signedTx is a transaction signing a fixed payload.
type signedTx struct {
	weavetest.Tx
	payload []byte
	sigs    []*StdSignature
}

var _ SignedTx = (*signedTx)(nil)

func (tx *signedTx) GetSignBytes() ([]byte, error)  { return tx.payload, nil }
func (tx *signedTx) GetSignatures() []*StdSignature { return tx.sigs }

func sign(t *testing.T, tx *signedTx, key *crypto.PrivateKey, chainID string, seq int64) {
	t.Helper()
	sig, err := SignTx(key, tx, chainID, seq)
	require.NoError(t, err)
	tx.sigs = append(tx.sigs, sig)
}

func TestBuildSignBytes(t *testing.T) {
	const chainID = "lease-chain-1"
	payload := []byte("create deposit lease-42")

	base, err := BuildSignBytes(payload, chainID, 3)
	require.NoError(t, err)
	assert.Len(t, base, 64)

	again, err := BuildSignBytes(payload, chainID, 3)
	require.NoError(t, err)
	assert.Equal(t, base, again)

	other, err := BuildSignBytes([]byte("release deposit lease-42"), chainID, 3)
	require.NoError(t, err)
	assert.NotEqual(t, base, other)

	other, err = BuildSignBytes(payload, "lease-chain-2", 3)
	require.NoError(t, err)
	assert.NotEqual(t, base, other)

	other, err = BuildSignBytes(payload, chainID, 4)
	require.NoError(t, err)
	assert.NotEqual(t, base, other)

	_, err = BuildSignBytes(payload, chainID, -1)
	assert.True(t, ErrInvalidSequence.Is(err))
	_, err = BuildSignBytes(payload, "bad chain!", 0)
	assert.True(t, errors.ErrInput.Is(err))
}

func TestVerifyTxSignatures(t *testing.T) {
	const chainID = "lease-chain-1"
	db := store.MemStore()
	tenant := crypto.GenPrivKeyEd25519()
	landlord := crypto.GenPrivKeyEd25519()

	tx := &signedTx{payload: []byte("release lease-1")}
	sign(t, tx, tenant, chainID, 0)
	sign(t, tx, landlord, chainID, 0)

	conds, err := VerifyTxSignatures(db, tx, chainID)
	require.NoError(t, err)
	assert.Equal(t, []weave.Condition{
		tenant.PublicKey().Condition(),
		landlord.PublicKey().Condition(),
	}, conds)

	seq, err := NextNonce(db, tenant.PublicKey().Address())
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)

	// a replay is rejected
	_, err = VerifyTxSignatures(db, tx, chainID)
	assert.True(t, ErrInvalidSequence.Is(err), "got %v", err)

	next := &signedTx{payload: []byte("return lease-1")}
	sign(t, next, tenant, chainID, 1)
	_, err = VerifyTxSignatures(db, next, chainID)
	require.NoError(t, err)

	// a signature is bound to its chain
	foreign := &signedTx{payload: []byte("return lease-1")}
	sign(t, foreign, tenant, "lease-chain-2", 2)
	_, err = VerifyTxSignatures(db, foreign, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)

	// and to its payload
	tampered := &signedTx{payload: []byte("return lease-2"), sigs: next.sigs}
	_, err = VerifyTxSignatures(db, tampered, chainID)
	assert.True(t, errors.ErrUnauthorized.Is(err), "got %v", err)

	conds, err = VerifyTxSignatures(db, &signedTx{}, chainID)
	require.NoError(t, err)
	assert.Empty(t, conds)
}

func TestSignatureValidate(t *testing.T) {
	key := crypto.GenPrivKeyEd25519()
	sig, err := key.Sign([]byte("rent"))
	require.NoError(t, err)

	cases := map[string]struct {
		sig     StdSignature
		wantErr *errors.Error
	}{
		"valid": {
			sig: StdSignature{Pubkey: key.PublicKey(), Signature: sig},
		},
		"negative sequence": {
			sig:     StdSignature{Sequence: -2, Pubkey: key.PublicKey(), Signature: sig},
			wantErr: ErrInvalidSequence,
		},
		"no public key": {
			sig:     StdSignature{Signature: sig},
			wantErr: errors.ErrUnauthorized,
		},
		"no signature": {
			sig:     StdSignature{Pubkey: key.PublicKey()},
			wantErr: errors.ErrUnauthorized,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			err := tc.sig.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, tc.wantErr.Is(err), "got %v", err)
		})
	}
}
