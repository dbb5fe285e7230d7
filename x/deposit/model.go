package deposit

import (
	"encoding/json"
	"regexp"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/orm"
	"github.com/gogo/protobuf/proto"
)

// Status is the lifecycle state of a deposit.
type Status int32

const (
	StatusInvalid Status = iota
	StatusHeld
	StatusReleased
	StatusDisputed
)

var statusNames = map[Status]string{
	StatusHeld:     "held",
	StatusReleased: "released",
	StatusDisputed: "disputed",
}

func (s Status) String() string {
	if n, ok := statusNames[s]; ok {
		return n
	}
	return "invalid"
}

// Final returns true if no further transition is allowed.
func (s Status) Final() bool {
	return s == StatusReleased || s == StatusDisputed
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errors.Wrapf(errors.ErrState, "unknown status %d", s)
	}
	return nil
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(raw []byte) error {
	var name string
	if err := json.Unmarshal(raw, &name); err != nil {
		return errors.Wrap(errors.ErrInput, "status must be a string")
	}
	for st, n := range statusNames {
		if n == name {
			*s = st
			return nil
		}
	}
	return errors.Wrapf(errors.ErrInput, "unknown status %q", name)
}

// Deposit is the security deposit of a single lease. It is stored under the
// lease id.
type Deposit struct {
	Metadata *weave.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata,omitempty"`
	LeaseID  string          `protobuf:"bytes,2,opt,name=lease_id,json=leaseId,proto3" json:"lease_id,omitempty"`
	Tenant   weave.Address   `protobuf:"bytes,3,opt,name=tenant,proto3" json:"tenant,omitempty"`
	Landlord weave.Address   `protobuf:"bytes,4,opt,name=landlord,proto3" json:"landlord,omitempty"`
	Amount   int64           `protobuf:"varint,5,opt,name=amount,proto3" json:"amount,omitempty"`
	Status   Status          `protobuf:"varint,6,opt,name=status,proto3" json:"status,omitempty"`
	// Block height at which the deposit was created.
	DepositDate int64 `protobuf:"varint,7,opt,name=deposit_date,json=depositDate,proto3" json:"deposit_date,omitempty"`
	// Block height of the release. Zero unless released.
	ReleaseDate int64 `protobuf:"varint,8,opt,name=release_date,json=releaseDate,proto3" json:"release_date,omitempty"`
}

var _ orm.Model = (*Deposit)(nil)

type depositProto Deposit

func (d *depositProto) Reset()         { *d = depositProto{} }
func (d *depositProto) String() string { return proto.CompactTextString(d) }
func (*depositProto) ProtoMessage()    {}

func (d *Deposit) Marshal() ([]byte, error) {
	return proto.Marshal((*depositProto)(d))
}

func (d *Deposit) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*depositProto)(d))
}

// Validate ensures the deposit is valid
func (d *Deposit) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", d.Metadata.Validate())
	errs = errors.AppendField(errs, "LeaseID", validateLeaseID(d.LeaseID))
	errs = errors.AppendField(errs, "Tenant", d.Tenant.Validate())
	errs = errors.AppendField(errs, "Landlord", d.Landlord.Validate())
	if d.Tenant.Equals(d.Landlord) {
		errs = errors.Append(errs, errors.Field("Landlord", errors.ErrInput, "landlord and tenant must differ"))
	}
	if d.Amount <= 0 {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be positive"))
	}
	errs = errors.AppendField(errs, "Status", d.Status.Validate())
	if d.DepositDate < 0 {
		errs = errors.Append(errs, errors.Field("DepositDate", errors.ErrInput, "negative height"))
	}
	switch {
	case d.Status == StatusReleased && d.ReleaseDate < d.DepositDate:
		errs = errors.Append(errs, errors.Field("ReleaseDate", errors.ErrInput, "release before deposit"))
	case d.Status != StatusReleased && d.ReleaseDate != 0:
		errs = errors.Append(errs, errors.Field("ReleaseDate", errors.ErrInput, "set for a %s deposit", d.Status))
	}
	return errs
}

func (d *Deposit) Copy() orm.Model {
	return &Deposit{
		Metadata:    d.Metadata.Copy(),
		LeaseID:     d.LeaseID,
		Tenant:      d.Tenant.Clone(),
		Landlord:    d.Landlord.Clone(),
		Amount:      d.Amount,
		Status:      d.Status,
		DepositDate: d.DepositDate,
		ReleaseDate: d.ReleaseDate,
	}
}

var isLeaseID = regexp.MustCompile(`^[a-zA-Z0-9_.:-]{1,64}$`).MatchString

func validateLeaseID(id string) error {
	if !isLeaseID(id) {
		return errors.Wrapf(errors.ErrInput, "invalid lease id %q", id)
	}
	return nil
}

// CustodyCondition is the condition owning all funds held by deposits.
var CustodyCondition = weave.NewCondition("deposit", "custody", []byte("escrow"))

// CustodyAddress returns the ledger account holding escrowed funds.
func CustodyAddress() weave.Address {
	return CustodyCondition.Address()
}

// NewBucket returns a bucket storing deposits under the lease id, indexed
// by tenant and landlord.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket("deposit", &Deposit{},
		orm.WithIndex("tenant", idxTenant, false),
		orm.WithIndex("landlord", idxLandlord, false),
	)
}

func toDeposit(m orm.Model) (*Deposit, error) {
	d, ok := m.(*Deposit)
	if !ok {
		return nil, errors.Wrapf(errors.ErrType, "can only index Deposit, got %T", m)
	}
	return d, nil
}

func idxTenant(m orm.Model) ([]byte, error) {
	d, err := toDeposit(m)
	if err != nil {
		return nil, err
	}
	return d.Tenant, nil
}

func idxLandlord(m orm.Model) ([]byte, error) {
	d, err := toDeposit(m)
	if err != nil {
		return nil, err
	}
	return d.Landlord, nil
}
