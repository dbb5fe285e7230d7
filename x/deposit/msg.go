package deposit

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/gogo/protobuf/proto"
)

const (
	pathCreateMsg  = "deposit/create"
	pathReleaseMsg = "deposit/release"
	pathReturnMsg  = "deposit/return"
	pathDisputeMsg = "deposit/dispute"
)

// CreateMsg escrows a security deposit for a lease. The main signer is the
// tenant and pays the amount.
type CreateMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	LeaseID  string          `protobuf:"bytes,2,opt,name=lease_id,json=leaseId,proto3" json:"lease_id,omitempty"`
	Landlord weave.Address   `protobuf:"bytes,3,opt,name=landlord,proto3" json:"landlord,omitempty"`
	Amount   int64           `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
}

var _ weave.Msg = (*CreateMsg)(nil)

type createMsgProto CreateMsg

func (m *createMsgProto) Reset()         { *m = createMsgProto{} }
func (m *createMsgProto) String() string { return proto.CompactTextString(m) }
func (*createMsgProto) ProtoMessage()    {}

func (m *CreateMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*createMsgProto)(m))
}

func (m *CreateMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*createMsgProto)(m))
}

func (CreateMsg) Path() string {
	return pathCreateMsg
}

func (m *CreateMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "LeaseID", validateLeaseID(m.LeaseID))
	errs = errors.AppendField(errs, "Landlord", m.Landlord.Validate())
	if m.Amount <= 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	return errs
}

// ReleaseMsg pays the deposit to the landlord. It must be signed by the
// tenant.
type ReleaseMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	LeaseID  string          `protobuf:"bytes,2,opt,name=lease_id,json=leaseId,proto3" json:"lease_id,omitempty"`
}

var _ weave.Msg = (*ReleaseMsg)(nil)

type releaseMsgProto ReleaseMsg

func (m *releaseMsgProto) Reset()         { *m = releaseMsgProto{} }
func (m *releaseMsgProto) String() string { return proto.CompactTextString(m) }
func (*releaseMsgProto) ProtoMessage()    {}

func (m *ReleaseMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*releaseMsgProto)(m))
}

func (m *ReleaseMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*releaseMsgProto)(m))
}

func (ReleaseMsg) Path() string {
	return pathReleaseMsg
}

func (m *ReleaseMsg) Validate() error {
	return validateLeaseRef(m.Metadata, m.LeaseID)
}

// ReturnMsg pays the deposit back to the tenant. It must be signed by the
// landlord.
type ReturnMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	LeaseID  string          `protobuf:"bytes,2,opt,name=lease_id,json=leaseId,proto3" json:"lease_id,omitempty"`
}

var _ weave.Msg = (*ReturnMsg)(nil)

type returnMsgProto ReturnMsg

func (m *returnMsgProto) Reset()         { *m = returnMsgProto{} }
func (m *returnMsgProto) String() string { return proto.CompactTextString(m) }
func (*returnMsgProto) ProtoMessage()    {}

func (m *ReturnMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*returnMsgProto)(m))
}

func (m *ReturnMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*returnMsgProto)(m))
}

func (ReturnMsg) Path() string {
	return pathReturnMsg
}

func (m *ReturnMsg) Validate() error {
	return validateLeaseRef(m.Metadata, m.LeaseID)
}

// DisputeMsg locks the deposit in custody. It can be signed by either
// the tenant or the landlord.
type DisputeMsg struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	LeaseID  string          `protobuf:"bytes,2,opt,name=lease_id,json=leaseId,proto3" json:"lease_id,omitempty"`
}

var _ weave.Msg = (*DisputeMsg)(nil)

type disputeMsgProto DisputeMsg

func (m *disputeMsgProto) Reset()         { *m = disputeMsgProto{} }
func (m *disputeMsgProto) String() string { return proto.CompactTextString(m) }
func (*disputeMsgProto) ProtoMessage()    {}

func (m *DisputeMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*disputeMsgProto)(m))
}

func (m *DisputeMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*disputeMsgProto)(m))
}

func (DisputeMsg) Path() string {
	return pathDisputeMsg
}

func (m *DisputeMsg) Validate() error {
	return validateLeaseRef(m.Metadata, m.LeaseID)
}

// validateLeaseRef leaves the lease id to the registry: an id that does
// not name a deposit is reported as not found.
func validateLeaseRef(meta *weave.Metadata, leaseID string) error {
	return errors.AppendField(nil, "Metadata", meta.Validate())
}

// GetLeaseID is used to tag delivered transactions with the lease they
// act on.
func (m *CreateMsg) GetLeaseID() string  { return m.LeaseID }
func (m *ReleaseMsg) GetLeaseID() string { return m.LeaseID }
func (m *ReturnMsg) GetLeaseID() string  { return m.LeaseID }
func (m *DisputeMsg) GetLeaseID() string { return m.LeaseID }
