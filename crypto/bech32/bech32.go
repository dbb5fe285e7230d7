/*
Package bech32 encodes addresses for humans. The checksum catches typing
mistakes and the human readable prefix shows which chain an address
belongs to, for example "lease1...".
*/
package bech32

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/btcsuite/btcutil/bech32"
)

// Encode returns data as a bech32 string with the prefix hrp.
func Encode(hrp string, data []byte) (string, error) {
	groups, err := bech32.ConvertBits(data, 8, 5, true)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "regroup bits: %s", err)
	}
	s, err := bech32.Encode(hrp, groups)
	if err != nil {
		return "", errors.Wrapf(errors.ErrInput, "encode: %s", err)
	}
	return s, nil
}

// Decode checks the bech32 string s and returns its payload. The prefix
// must equal hrp.
func Decode(hrp, s string) ([]byte, error) {
	got, groups, err := bech32.Decode(s)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "decode: %s", err)
	}
	if got != hrp {
		return nil, errors.Wrapf(errors.ErrInput, "prefix %q, want %q", got, hrp)
	}
	data, err := bech32.ConvertBits(groups, 5, 8, false)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "regroup bits: %s", err)
	}
	return data, nil
}
