package weavetest

import (
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest/assert"
)

func TestTx(t *testing.T) {
	msg := &Msg{RoutePath: "deposit/release"}
	tx := &Tx{Msg: msg}
	assert.Equal(t, "deposit/release", weave.GetPath(tx))

	var loaded *Msg
	assert.Nil(t, weave.LoadMsg(tx, &loaded))
	assert.Equal(t, true, loaded == msg)

	assert.IsErr(t, errors.ErrMsg, weave.LoadMsg(&Tx{Msg: &Msg{Err: errors.ErrMsg}}, &loaded))
	_, err := (&Tx{Msg: msg, Err: errors.ErrInput}).GetMsg()
	assert.IsErr(t, errors.ErrInput, err)
}
