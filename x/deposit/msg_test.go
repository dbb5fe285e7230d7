package deposit

import (
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest/assert"
)

func TestCreateMsgValidate(t *testing.T) {
	cases := map[string]struct {
		msg     weave.Msg
		wantErr map[string]*errors.Error
	}{
		"valid": {
			msg: &CreateMsg{
				Metadata: &weave.Metadata{Schema: 1},
				LeaseID:  "unit-4b:2019",
				Landlord: weavetest.NewCondition().Address(),
				Amount:   1200,
			},
			wantErr: map[string]*errors.Error{
				"Metadata": nil, "LeaseID": nil, "Landlord": nil, "Amount": nil,
			},
		},
		"missing everything": {
			msg: &CreateMsg{},
			wantErr: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
				"LeaseID":  errors.ErrInput,
				"Landlord": errors.ErrInput,
				"Amount":   errors.ErrAmount,
			},
		},
		"release without lease": {
			msg: &ReleaseMsg{Metadata: &weave.Metadata{Schema: 1}},
			wantErr: map[string]*errors.Error{
				"Metadata": nil,
				"LeaseID":  nil,
			},
		},
		"return with a too long lease id": {
			msg: &ReturnMsg{Metadata: &weave.Metadata{Schema: 1}, LeaseID: string(make([]byte, 65))},
			wantErr: map[string]*errors.Error{
				"LeaseID": nil,
			},
		},
		"dispute with bad metadata": {
			msg: &DisputeMsg{Metadata: &weave.Metadata{}, LeaseID: "ok"},
			wantErr: map[string]*errors.Error{
				"Metadata": errors.ErrMetadata,
				"LeaseID":  nil,
			},
		},
	}
	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			err := tc.msg.Validate()
			for field, want := range tc.wantErr {
				assert.FieldError(t, err, field, want)
			}
		})
	}
}

func TestMsgPaths(t *testing.T) {
	assert.Equal(t, "deposit/create", (&CreateMsg{}).Path())
	assert.Equal(t, "deposit/release", (&ReleaseMsg{}).Path())
	assert.Equal(t, "deposit/return", (&ReturnMsg{}).Path())
	assert.Equal(t, "deposit/dispute", (&DisputeMsg{}).Path())
}

func TestDepositSerialization(t *testing.T) {
	d := &Deposit{
		Metadata:    &weave.Metadata{Schema: 1},
		LeaseID:     "lease123",
		Tenant:      weavetest.NewCondition().Address(),
		Landlord:    weavetest.NewCondition().Address(),
		Amount:      1000,
		Status:      StatusReleased,
		DepositDate: 3,
		ReleaseDate: 9,
	}
	raw, err := d.Marshal()
	assert.Nil(t, err)
	var got Deposit
	assert.Nil(t, got.Unmarshal(raw))
	assert.Equal(t, d, &got)
	assert.Nil(t, got.Validate())
}
