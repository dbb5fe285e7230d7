package weavetest

import (
	"crypto/rand"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
)

// ParseAddress decodes an address in any format accepted by
// weave.ParseAddress and fails the test if it is not valid.
func ParseAddress(t testing.TB, enc string) weave.Address {
	t.Helper()
	addr, err := weave.ParseAddress(enc)
	if err != nil {
		t.Fatalf("cannot parse address %q: %s", enc, err)
	}
	if err := addr.Validate(); err != nil {
		t.Fatalf("address %q: %s", enc, err)
	}
	return addr
}

// RandomAddr returns a random address that no key owns, for parties that
// never sign.
func RandomAddr(t testing.TB) weave.Address {
	t.Helper()
	raw := make([]byte, weave.AddressLength)
	if _, err := rand.Read(raw); err != nil {
		t.Fatalf("cannot read random bytes: %s", err)
	}
	return weave.Address(raw)
}
