package orm

import (
	"bytes"
	"sort"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/gogo/protobuf/proto"
)

// MultiRef is a sorted set of primary keys, stored by non unique indexes.
type MultiRef struct {
	Refs [][]byte `protobuf:"bytes,1,rep,name=refs,proto3" json:"refs,omitempty"`
}

type multiRefProto MultiRef

func (m *multiRefProto) Reset()         { *m = multiRefProto{} }
func (m *multiRefProto) String() string { return proto.CompactTextString(m) }
func (*multiRefProto) ProtoMessage()    {}

func (m *MultiRef) Marshal() ([]byte, error) {
	return proto.Marshal((*multiRefProto)(m))
}

func (m *MultiRef) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*multiRefProto)(m))
}

func (m *MultiRef) search(ref []byte) (int, bool) {
	n := sort.Search(len(m.Refs), func(i int) bool {
		return bytes.Compare(m.Refs[i], ref) >= 0
	})
	return n, n < len(m.Refs) && bytes.Equal(m.Refs[n], ref)
}

// Add inserts the reference, keeping the set sorted. Adding a reference
// twice fails with ErrDuplicate.
func (m *MultiRef) Add(ref []byte) error {
	n, found := m.search(ref)
	if found {
		return errors.Wrapf(errors.ErrDuplicate, "reference %X", ref)
	}
	m.Refs = append(m.Refs, nil)
	copy(m.Refs[n+1:], m.Refs[n:])
	m.Refs[n] = append([]byte(nil), ref...)
	return nil
}

// Remove deletes the reference or fails with ErrNotFound.
func (m *MultiRef) Remove(ref []byte) error {
	n, found := m.search(ref)
	if !found {
		return errors.Wrapf(errors.ErrNotFound, "reference %X", ref)
	}
	m.Refs = append(m.Refs[:n], m.Refs[n+1:]...)
	return nil
}
