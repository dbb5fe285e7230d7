package crypto

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/gogo/protobuf/proto"
	"golang.org/x/crypto/ed25519"
)

// ExtensionName is used for the conditions we get from signatures
const ExtensionName = "sigs"

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) (*Signature, error)
	PublicKey() *PublicKey
}

// PublicKey is an ed25519 public key.
type PublicKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// Verify verifies the signature was created with this message and public key
func (p *PublicKey) Verify(message []byte, sig *Signature) bool {
	if p == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return false
	}
	if sig == nil || len(sig.Ed25519) != ed25519.SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p.Ed25519), message, sig.Ed25519)
}

// Condition encodes the public key into a weave condition.
// Returns nil for an empty key.
func (p *PublicKey) Condition() weave.Condition {
	if p == nil || len(p.Ed25519) == 0 {
		return nil
	}
	return weave.NewCondition(ExtensionName, "ed25519", p.Ed25519)
}

// Address is the address of this key's condition.
func (p *PublicKey) Address() weave.Address {
	return p.Condition().Address()
}

// Validate ensures the key has a proper size.
func (p *PublicKey) Validate() error {
	if p == nil || len(p.Ed25519) != ed25519.PublicKeySize {
		return errors.Wrap(errors.ErrInput, "invalid ed25519 public key")
	}
	return nil
}

// PrivateKey is an ed25519 private key.
type PrivateKey struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

var _ Signer = (*PrivateKey)(nil)

// Sign returns a matching signature for this private key
func (p *PrivateKey) Sign(message []byte) (*Signature, error) {
	if p == nil || len(p.Ed25519) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrInput, "invalid ed25519 private key")
	}
	bz := ed25519.Sign(ed25519.PrivateKey(p.Ed25519), message)
	return &Signature{Ed25519: bz}, nil
}

// PublicKey returns the corresponding PublicKey
func (p *PrivateKey) PublicKey() *PublicKey {
	if p == nil || len(p.Ed25519) != ed25519.PrivateKeySize {
		return &PublicKey{}
	}
	pub := ed25519.PrivateKey(p.Ed25519).Public().(ed25519.PublicKey)
	return &PublicKey{Ed25519: pub}
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() *PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return &PrivateKey{Ed25519: priv}
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) *PrivateKey {
	priv := ed25519.NewKeyFromSeed(seed)
	return &PrivateKey{Ed25519: priv}
}

// Signature is an ed25519 signature.
type Signature struct {
	Ed25519 []byte `protobuf:"bytes,1,opt,name=ed25519,proto3" json:"ed25519,omitempty"`
}

// Protobuf views of the types above. They carry no Marshal method so that
// proto.Marshal falls back to the reflection based encoder.
type (
	publicKeyProto  PublicKey
	privateKeyProto PrivateKey
	signatureProto  Signature
)

func (m *publicKeyProto) Reset()         { *m = publicKeyProto{} }
func (m *publicKeyProto) String() string { return proto.CompactTextString(m) }
func (*publicKeyProto) ProtoMessage()    {}

func (m *privateKeyProto) Reset()         { *m = privateKeyProto{} }
func (m *privateKeyProto) String() string { return proto.CompactTextString(m) }
func (*privateKeyProto) ProtoMessage()    {}

func (m *signatureProto) Reset()         { *m = signatureProto{} }
func (m *signatureProto) String() string { return proto.CompactTextString(m) }
func (*signatureProto) ProtoMessage()    {}

func (p *PublicKey) Marshal() ([]byte, error)    { return proto.Marshal((*publicKeyProto)(p)) }
func (p *PublicKey) Unmarshal(raw []byte) error  { return proto.Unmarshal(raw, (*publicKeyProto)(p)) }
func (p *PrivateKey) Marshal() ([]byte, error)   { return proto.Marshal((*privateKeyProto)(p)) }
func (p *PrivateKey) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*privateKeyProto)(p)) }
func (s *Signature) Marshal() ([]byte, error)    { return proto.Marshal((*signatureProto)(s)) }
func (s *Signature) Unmarshal(raw []byte) error  { return proto.Unmarshal(raw, (*signatureProto)(s)) }
