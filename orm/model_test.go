package orm

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/gogo/protobuf/proto"
)

// unit is a rental unit used to exercise buckets and indexes. Units are
// indexed by owner (many per owner) and by their street address (unique).
type unit struct {
	Owner  []byte `protobuf:"bytes,1,opt,name=owner,proto3" json:"owner,omitempty"`
	Street string `protobuf:"bytes,2,opt,name=street,proto3" json:"street,omitempty"`
	Rent   int64  `protobuf:"varint,3,opt,name=rent,proto3" json:"rent,omitempty"`
}

type unitProto unit

func (u *unitProto) Reset()         { *u = unitProto{} }
func (u *unitProto) String() string { return proto.CompactTextString(u) }
func (*unitProto) ProtoMessage()    {}

func (u *unit) Marshal() ([]byte, error) { return proto.Marshal((*unitProto)(u)) }
func (u *unit) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*unitProto)(u))
}

func (u *unit) Validate() error {
	if u.Rent < 0 {
		return errors.Wrap(errors.ErrAmount, "negative rent")
	}
	return nil
}

func (u *unit) Copy() Model {
	c := *u
	c.Owner = append([]byte(nil), u.Owner...)
	return &c
}

// other is a second model type, for type checks.
type other struct {
	unit
}

func byOwner(m Model) ([]byte, error) {
	u, ok := m.(*unit)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", m)
	}
	return u.Owner, nil
}

func byStreet(m Model) ([]byte, error) {
	u, ok := m.(*unit)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "%T", m)
	}
	if u.Street == "" {
		return nil, nil
	}
	return []byte(u.Street), nil
}

func newUnitBucket() ModelBucket {
	return NewModelBucket("unit", &unit{},
		WithIndex("owner", byOwner, false),
		WithIndex("street", byStreet, true),
	)
}
