package app

import (
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest/assert"
)

func TestSplitAndJoinResults(t *testing.T) {
	models := []weave.Model{
		weave.Pair([]byte("lease-1"), []byte("held")),
		weave.Pair([]byte("lease-2"), []byte("released")),
	}
	keys, values := SplitModels(models)
	assert.Equal(t, [][]byte{[]byte("lease-1"), []byte("lease-2")}, keys.Results)
	assert.Equal(t, [][]byte{[]byte("held"), []byte("released")}, values.Results)

	joined, err := JoinResults(keys, values)
	assert.Nil(t, err)
	assert.Equal(t, models, joined)

	values.Results = values.Results[:1]
	_, err = JoinResults(keys, values)
	assert.IsErr(t, errors.ErrInput, err)
}

func TestUnmarshalOneResultOfEmptySet(t *testing.T) {
	raw, err := (&ResultSet{}).Marshal()
	assert.Nil(t, err)
	var dst ResultSet
	assert.Nil(t, UnmarshalOneResult(raw, &dst))
	assert.Equal(t, 0, len(dst.Results))
}
