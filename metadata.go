package weave

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/gogo/protobuf/proto"
)

// Metadata is embedded in every stored model and message. Schema is the
// version of the model serialization and must be at least 1.
type Metadata struct {
	Schema int32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema,omitempty"`
}

type metadataProto Metadata

func (m *metadataProto) Reset()         { *m = metadataProto{} }
func (m *metadataProto) String() string { return proto.CompactTextString(m) }
func (*metadataProto) ProtoMessage()    {}

// Marshal serializes the metadata.
func (m *Metadata) Marshal() ([]byte, error) {
	return proto.Marshal((*metadataProto)(m))
}

// Unmarshal loads the metadata from its serialized form.
func (m *Metadata) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*metadataProto)(m))
}

// Validate returns an error if the metadata is missing or declares an
// unsupported schema version.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema < 1 {
		return errors.Wrap(errors.ErrMetadata, "schema version")
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when implementing
// orm.Model.
func (m *Metadata) Copy() *Metadata {
	if m == nil {
		return nil
	}
	cpy := *m
	return &cpy
}
