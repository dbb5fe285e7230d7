package app

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/deposit"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/ledger"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/sigs"
	"github.com/gogo/protobuf/proto"
)

// Tx is the transaction envelope accepted by the lease escrow chain. Exactly
// one of the message fields must be set.
type Tx struct {
	Signatures []*sigs.StdSignature `protobuf:"bytes,1,rep,name=signatures,proto3" json:"signatures,omitempty"`

	SendMsg           *ledger.SendMsg     `protobuf:"bytes,2,opt,name=send_msg,json=sendMsg,proto3" json:"send_msg,omitempty"`
	CreateDepositMsg  *deposit.CreateMsg  `protobuf:"bytes,3,opt,name=create_deposit_msg,json=createDepositMsg,proto3" json:"create_deposit_msg,omitempty"`
	ReleaseDepositMsg *deposit.ReleaseMsg `protobuf:"bytes,4,opt,name=release_deposit_msg,json=releaseDepositMsg,proto3" json:"release_deposit_msg,omitempty"`
	ReturnDepositMsg  *deposit.ReturnMsg  `protobuf:"bytes,5,opt,name=return_deposit_msg,json=returnDepositMsg,proto3" json:"return_deposit_msg,omitempty"`
	DisputeDepositMsg *deposit.DisputeMsg `protobuf:"bytes,6,opt,name=dispute_deposit_msg,json=disputeDepositMsg,proto3" json:"dispute_deposit_msg,omitempty"`
}

var _ weave.Tx = (*Tx)(nil)
var _ sigs.SignedTx = (*Tx)(nil)

type txProto Tx

func (t *txProto) Reset()         { *t = txProto{} }
func (t *txProto) String() string { return proto.CompactTextString(t) }
func (*txProto) ProtoMessage()    {}

func (tx *Tx) Marshal() ([]byte, error) {
	return proto.Marshal((*txProto)(tx))
}

func (tx *Tx) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*txProto)(tx))
}

// NewTx wraps a single message into a transaction.
func NewTx(msg weave.Msg) (*Tx, error) {
	var tx Tx
	switch m := msg.(type) {
	case *ledger.SendMsg:
		tx.SendMsg = m
	case *deposit.CreateMsg:
		tx.CreateDepositMsg = m
	case *deposit.ReleaseMsg:
		tx.ReleaseDepositMsg = m
	case *deposit.ReturnMsg:
		tx.ReturnDepositMsg = m
	case *deposit.DisputeMsg:
		tx.DisputeDepositMsg = m
	default:
		return nil, errors.WithType(errors.ErrType, msg)
	}
	return &tx, nil
}

// GetMsg returns the single message carried by the transaction.
func (tx *Tx) GetMsg() (weave.Msg, error) {
	var msgs []weave.Msg
	if tx.SendMsg != nil {
		msgs = append(msgs, tx.SendMsg)
	}
	if tx.CreateDepositMsg != nil {
		msgs = append(msgs, tx.CreateDepositMsg)
	}
	if tx.ReleaseDepositMsg != nil {
		msgs = append(msgs, tx.ReleaseDepositMsg)
	}
	if tx.ReturnDepositMsg != nil {
		msgs = append(msgs, tx.ReturnDepositMsg)
	}
	if tx.DisputeDepositMsg != nil {
		msgs = append(msgs, tx.DisputeDepositMsg)
	}

	switch len(msgs) {
	case 0:
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	case 1:
		return msgs[0], nil
	default:
		return nil, errors.Wrapf(errors.ErrMsg, "%d messages in one transaction", len(msgs))
	}
}

func (tx *Tx) GetSignatures() []*sigs.StdSignature {
	return tx.Signatures
}

// GetSignBytes returns the serialized transaction without signatures.
func (tx *Tx) GetSignBytes() ([]byte, error) {
	unsigned := *tx
	unsigned.Signatures = nil
	return unsigned.Marshal()
}

// TxDecoder creates a Tx and unmarshals bytes into it
func TxDecoder(raw []byte) (weave.Tx, error) {
	var tx Tx
	if err := tx.Unmarshal(raw); err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return &tx, nil
}
