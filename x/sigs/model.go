package sigs

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/crypto"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/orm"
	"github.com/gogo/protobuf/proto"
)

// maxSequence is the greatest sequence clients using JSON numbers can
// represent without losing precision.
const maxSequence = 1<<53 - 1

// Identity is the state kept for a public key that signed at least one
// transaction.
type Identity struct {
	Metadata *weave.Metadata   `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Pubkey   *crypto.PublicKey `protobuf:"bytes,2,opt,name=pubkey,proto3" json:"pubkey,omitempty"`
	Sequence int64             `protobuf:"varint,3,opt,name=sequence,proto3" json:"sequence,omitempty"`
}

var _ orm.Model = (*Identity)(nil)

type identityProto Identity

func (i *identityProto) Reset()         { *i = identityProto{} }
func (i *identityProto) String() string { return proto.CompactTextString(i) }
func (*identityProto) ProtoMessage()    {}

func (i *Identity) Marshal() ([]byte, error) {
	return proto.Marshal((*identityProto)(i))
}

func (i *Identity) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*identityProto)(i))
}

func (i *Identity) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", i.Metadata.Validate())
	errs = errors.AppendField(errs, "Pubkey", i.Pubkey.Validate())
	if i.Sequence < 0 || i.Sequence > maxSequence {
		errs = errors.AppendField(errs, "Sequence", errors.Wrapf(ErrInvalidSequence, "%d out of range", i.Sequence))
	}
	return errs
}

func (i *Identity) Copy() orm.Model {
	c := &Identity{
		Metadata: i.Metadata.Copy(),
		Sequence: i.Sequence,
	}
	if i.Pubkey != nil {
		c.Pubkey = &crypto.PublicKey{Ed25519: append([]byte(nil), i.Pubkey.Ed25519...)}
	}
	return c
}

// consume accepts a signature created for seq and moves the identity to
// the next sequence.
func (i *Identity) consume(seq int64) error {
	if seq != i.Sequence {
		return errors.Wrapf(ErrInvalidSequence, "want %d, got %d", i.Sequence, seq)
	}
	if i.Sequence == maxSequence {
		return errors.Wrap(errors.ErrOverflow, "sequence")
	}
	i.Sequence++
	return nil
}

// Bucket stores identities under the address of their public key.
type Bucket struct {
	orm.ModelBucket
}

// NewBucket returns the identity bucket.
func NewBucket() Bucket {
	return Bucket{ModelBucket: orm.NewModelBucket("sigs", &Identity{})}
}

// Load returns the identity of the key. A key that never signed starts at
// sequence zero.
func (b Bucket) Load(db weave.ReadOnlyKVStore, pubkey *crypto.PublicKey) (*Identity, error) {
	var id Identity
	switch err := b.One(db, pubkey.Address(), &id); {
	case err == nil:
		return &id, nil
	case errors.ErrNotFound.Is(err):
		return &Identity{Metadata: &weave.Metadata{Schema: 1}, Pubkey: pubkey}, nil
	default:
		return nil, err
	}
}

// NextNonce returns the sequence the signer has to sign its next
// transaction with.
func NextNonce(db weave.ReadOnlyKVStore, signer weave.Address) (int64, error) {
	var id Identity
	switch err := NewBucket().One(db, signer, &id); {
	case err == nil:
		return id.Sequence, nil
	case errors.ErrNotFound.Is(err):
		return 0, nil
	default:
		return 0, err
	}
}
