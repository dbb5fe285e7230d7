package sigs

import (
	"crypto/sha512"
	"encoding/binary"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/crypto"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// signPrefix versions the layout of the signed bytes.
var signPrefix = []byte{0, 0xCA, 0xFE, 0}

// BuildSignBytes returns the sha512 digest of
//
//	prefix (4 bytes) | len(chainID) (1 byte) | chainID | seq (8 bytes, big endian) | signBytes
//
// which is what a key signs for a transaction.
func BuildSignBytes(signBytes []byte, chainID string, seq int64) ([]byte, error) {
	if seq < 0 {
		return nil, errors.Wrap(ErrInvalidSequence, "negative")
	}
	if !weave.IsValidChainID(chainID) {
		return nil, errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}

	buf := make([]byte, 0, len(signPrefix)+1+len(chainID)+8+len(signBytes))
	buf = append(buf, signPrefix...)
	buf = append(buf, byte(len(chainID)))
	buf = append(buf, chainID...)
	var n [8]byte
	binary.BigEndian.PutUint64(n[:], uint64(seq))
	buf = append(buf, n[:]...)
	buf = append(buf, signBytes...)

	digest := sha512.Sum512(buf)
	return digest[:], nil
}

// SignTx signs the transaction for the chain with the given sequence.
func SignTx(signer crypto.Signer, tx SignedTx, chainID string, seq int64) (*StdSignature, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(raw, chainID, seq)
	if err != nil {
		return nil, err
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return nil, err
	}
	return &StdSignature{
		Sequence:  seq,
		Pubkey:    signer.PublicKey(),
		Signature: sig,
	}, nil
}

// VerifyTxSignatures checks every signature of the transaction and
// increments the sequence of each signer. It returns the conditions of all
// signers, which is empty for an unsigned transaction.
func VerifyTxSignatures(db weave.KVStore, tx SignedTx, chainID string) ([]weave.Condition, error) {
	raw, err := tx.GetSignBytes()
	if err != nil {
		return nil, err
	}
	sigs := tx.GetSignatures()
	conds := make([]weave.Condition, 0, len(sigs))
	for n, sig := range sigs {
		cond, err := VerifySignature(db, sig, raw, chainID)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", n)
		}
		conds = append(conds, cond)
	}
	return conds, nil
}

// VerifySignature checks a single signature and consumes its sequence.
func VerifySignature(db weave.KVStore, sig *StdSignature, signBytes []byte, chainID string) (weave.Condition, error) {
	if err := sig.Validate(); err != nil {
		return nil, err
	}
	digest, err := BuildSignBytes(signBytes, chainID, sig.Sequence)
	if err != nil {
		return nil, err
	}
	if !sig.Pubkey.Verify(digest, sig.Signature) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "invalid signature")
	}

	bucket := NewBucket()
	id, err := bucket.Load(db, sig.Pubkey)
	if err != nil {
		return nil, err
	}
	if err := id.consume(sig.Sequence); err != nil {
		return nil, err
	}
	if err := bucket.Put(db, sig.Pubkey.Address(), id); err != nil {
		return nil, err
	}
	return sig.Pubkey.Condition(), nil
}
