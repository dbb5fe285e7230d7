package bech32

import (
	"strings"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest/assert"
)

func TestEncodeDecode(t *testing.T) {
	addr := []byte("0123456789abcdefghij")

	s, err := Encode("lease", addr)
	assert.Nil(t, err)
	assert.Equal(t, true, strings.HasPrefix(s, "lease1"))

	got, err := Decode("lease", s)
	assert.Nil(t, err)
	assert.Equal(t, addr, got)

	_, err = Decode("other", s)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestDecodeErrors(t *testing.T) {
	s, err := Encode("lease", []byte("tenant-address-bytes"))
	assert.Nil(t, err)

	// change one character of the checksum
	last := s[len(s)-1]
	swap := byte('q')
	if last == 'q' {
		swap = 'p'
	}
	cases := map[string]string{
		"broken checksum": s[:len(s)-1] + string(swap),
		"no separator":    "leasexyz",
		"empty":           "",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Decode("lease", input)
			assert.IsErr(t, errors.ErrInput, err)
		})
	}
}
