package ledger

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/gogo/protobuf/proto"
)

const (
	pathSendMsg = "ledger/send"

	maxMemoSize = 128
)

// SendMsg moves value from the source account to the destination account.
// It must be signed by the source owner.
type SendMsg struct {
	Metadata    *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Source      weave.Address   `protobuf:"bytes,2,opt,name=source,proto3" json:"source,omitempty"`
	Destination weave.Address   `protobuf:"bytes,3,opt,name=destination,proto3" json:"destination,omitempty"`
	Amount      int64           `protobuf:"varint,4,opt,name=amount,proto3" json:"amount,omitempty"`
	Memo        string          `protobuf:"bytes,5,opt,name=memo,proto3" json:"memo,omitempty"`
}

var _ weave.Msg = (*SendMsg)(nil)

type sendMsgProto SendMsg

func (m *sendMsgProto) Reset()         { *m = sendMsgProto{} }
func (m *sendMsgProto) String() string { return proto.CompactTextString(m) }
func (*sendMsgProto) ProtoMessage()    {}

func (m *SendMsg) Marshal() ([]byte, error) {
	return proto.Marshal((*sendMsgProto)(m))
}

func (m *SendMsg) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*sendMsgProto)(m))
}

// Path returns the routing path for this message.
func (SendMsg) Path() string {
	return pathSendMsg
}

// Validate makes sure that this is sensible
func (m *SendMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Source", m.Source.Validate())
	errs = errors.AppendField(errs, "Destination", m.Destination.Validate())
	if m.Amount <= 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	if len(m.Memo) > maxMemoSize {
		errs = errors.Append(errs, errors.Field("Memo", errors.ErrInput, "cannot be longer than %d", maxMemoSize))
	}
	return errs
}
