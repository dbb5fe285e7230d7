package weave_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tendermint/tendermint/libs/common"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

func TestCreateErrorResult(t *testing.T) {
	cases := map[string]struct {
		err       error
		debug     bool
		wantLog   string
		wantCode  uint32
		wantTrace bool
	}{
		"plain error is redacted": {
			err:      fmt.Errorf("base"),
			wantLog:  "internal error",
			wantCode: 1,
		},
		"plain error in debug mode": {
			err:      fmt.Errorf("base"),
			debug:    true,
			wantLog:  "base",
			wantCode: 1,
		},
		"registered error": {
			err:      errors.Wrap(errors.ErrUnauthorized, "tenant only"),
			wantLog:  "tenant only: unauthorized",
			wantCode: errors.ErrUnauthorized.ABCICode(),
		},
		"registered error in debug mode carries a stack": {
			err:       errors.Wrap(errors.ErrState, "released"),
			debug:     true,
			wantLog:   "released: invalid state",
			wantCode:  errors.ErrState.ABCICode(),
			wantTrace: true,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			dres := weave.DeliverTxError(tc.err, tc.debug)
			assert.True(t, dres.IsErr())
			assert.True(t, strings.HasPrefix(dres.Log, "cannot deliver tx: "+tc.wantLog), dres.Log)
			assert.Equal(t, tc.wantCode, dres.Code)
			if tc.wantTrace {
				assert.Contains(t, dres.Log, "results_test.go")
			}

			cres := weave.CheckTxError(tc.err, tc.debug)
			assert.True(t, cres.IsErr())
			assert.True(t, strings.HasPrefix(cres.Log, "cannot check tx: "+tc.wantLog), cres.Log)
			assert.Equal(t, tc.wantCode, cres.Code)

			qres := weave.QueryError(tc.err, tc.debug)
			assert.Equal(t, tc.wantCode, qres.Code)
		})
	}
}

func TestCreateResults(t *testing.T) {
	d, msg := []byte{1, 3, 4}, "got it"
	tags := []common.KVPair{{Key: []byte("deposit"), Value: []byte("lease123")}}
	dres := weave.DeliverResult{Data: d, Log: msg, Tags: tags}
	ad := dres.ToABCI()
	assert.EqualValues(t, d, ad.Data)
	assert.Equal(t, msg, ad.Log)
	assert.Equal(t, tags, ad.Tags)
	assert.False(t, ad.IsErr())

	c, gas := "aok", int64(12345)
	cres := weave.CheckResult{Log: c, GasAllocated: gas}
	ac := cres.ToABCI()
	assert.Equal(t, c, ac.Log)
	assert.Equal(t, gas, ac.GasWanted)
	assert.Empty(t, ac.Data)

	ok := weave.DeliverOrError(&dres, nil, false)
	assert.Equal(t, msg, ok.Log)
	failed := weave.DeliverOrError(nil, errors.ErrNotFound, false)
	assert.Equal(t, errors.ErrNotFound.ABCICode(), failed.Code)
	checked := weave.CheckOrError(nil, errors.ErrInsufficientAmount, false)
	assert.Equal(t, errors.ErrInsufficientAmount.ABCICode(), checked.Code)
}
