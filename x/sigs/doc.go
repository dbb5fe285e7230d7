/*
Package sigs authenticates transactions by their ed25519 signatures.

Every signature carries the sequence number of its key. The sequence is
stored per public key and incremented with each accepted signature, so a
signed transaction cannot be replayed. Signed bytes are prefixed with the
chain id so that a signature is only valid on one chain.
*/
package sigs

import "github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"

// ErrInvalidSequence is returned when a signature sequence does not match
// the one stored for its key.
var ErrInvalidSequence = errors.Register(120, "invalid sequence")
