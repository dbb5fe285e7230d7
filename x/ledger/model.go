package ledger

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/orm"
	"github.com/gogo/protobuf/proto"
)

// Account holds the balance of a single party. It is stored under the
// party address.
type Account struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	Balance  int64           `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
}

var _ orm.Model = (*Account)(nil)

type accountProto Account

func (a *accountProto) Reset()         { *a = accountProto{} }
func (a *accountProto) String() string { return proto.CompactTextString(a) }
func (*accountProto) ProtoMessage()    {}

func (a *Account) Marshal() ([]byte, error) {
	return proto.Marshal((*accountProto)(a))
}

func (a *Account) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*accountProto)(a))
}

// Validate returns an error if the account is not in a state that can be
// persisted.
func (a *Account) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", a.Metadata.Validate())
	if a.Balance < 0 {
		errs = errors.Append(errs, errors.Field("Balance", errors.ErrAmount, "negative balance"))
	}
	return errs
}

func (a *Account) Copy() orm.Model {
	return &Account{
		Metadata: a.Metadata.Copy(),
		Balance:  a.Balance,
	}
}

// NewAccountBucket returns a bucket storing accounts by their owner
// address.
func NewAccountBucket() orm.ModelBucket {
	return orm.NewModelBucket("acct", &Account{})
}
