package sigs

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/crypto"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/gogo/protobuf/proto"
)

// SignedTx is a transaction carrying signatures over its sign bytes.
type SignedTx interface {
	// GetSignBytes returns the bytes that are signed. They must not
	// depend on the signatures.
	GetSignBytes() ([]byte, error)
	GetSignatures() []*StdSignature
}

// StdSignature is the signature of one key, bound to the key sequence.
type StdSignature struct {
	Sequence  int64             `protobuf:"varint,1,opt,name=sequence,proto3" json:"sequence,omitempty"`
	Pubkey    *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Signature *crypto.Signature `protobuf:"bytes,4,opt,name=signature,proto3" json:"signature,omitempty"`
}

type stdSignatureProto StdSignature

func (s *stdSignatureProto) Reset()         { *s = stdSignatureProto{} }
func (s *stdSignatureProto) String() string { return proto.CompactTextString(s) }
func (*stdSignatureProto) ProtoMessage()    {}

func (s *StdSignature) Marshal() ([]byte, error) {
	return proto.Marshal((*stdSignatureProto)(s))
}

func (s *StdSignature) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*stdSignatureProto)(s))
}

func (s *StdSignature) Validate() error {
	switch {
	case s.Sequence < 0:
		return errors.Wrap(ErrInvalidSequence, "negative")
	case s.Pubkey == nil:
		return errors.Wrap(errors.ErrUnauthorized, "missing public key")
	case s.Signature == nil:
		return errors.Wrap(errors.ErrUnauthorized, "missing signature")
	}
	return nil
}
