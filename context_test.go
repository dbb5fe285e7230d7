package weave

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

func TestContextValuesAreSetOnce(t *testing.T) {
	ctx := context.Background()

	_, ok := GetHeight(ctx)
	assert.False(t, ok)
	_, ok = GetHeader(ctx)
	assert.False(t, ok)
	assert.Panics(t, func() { GetChainID(ctx) })

	header := abci.Header{Height: 12, ChainID: "lease-chain"}
	ctx = WithHeader(ctx, header)
	ctx = WithHeight(ctx, header.Height)
	ctx = WithChainID(ctx, header.ChainID)

	got, ok := GetHeader(ctx)
	require.True(t, ok)
	assert.Equal(t, header, got)
	height, ok := GetHeight(ctx)
	require.True(t, ok)
	assert.Equal(t, int64(12), height)
	assert.Equal(t, "lease-chain", GetChainID(ctx))

	assert.Panics(t, func() { WithHeader(ctx, header) })
	assert.Panics(t, func() { WithHeight(ctx, 13) })
	assert.Panics(t, func() { WithChainID(ctx, "lease-chain") })
	assert.Panics(t, func() { WithChainID(context.Background(), "bad") })
}

func TestContextLogger(t *testing.T) {
	bg := context.Background()
	assert.Equal(t, DefaultLogger, GetLogger(bg))

	var buf bytes.Buffer
	ctx := WithLogger(bg, log.NewTMLogger(&buf))
	ctx = WithHeight(ctx, 3)
	ctx = WithLogInfo(ctx, "lease", "L-1")
	GetLogger(ctx).Info("released")
	assert.Contains(t, buf.String(), "lease=L-1")

	// the logger may be replaced without touching other values
	ctx = WithLogger(ctx, log.NewNopLogger())
	h, _ := GetHeight(ctx)
	assert.Equal(t, int64(3), h)
}

func TestIsValidChainID(t *testing.T) {
	cases := map[string]bool{
		"":                              false,
		"foo":                           false,
		"special":                       true,
		"lease-chain_88":                true,
		"invalid;;chars":                false,
		"this-chain-id-is-way-too-long": false,
	}
	for id, valid := range cases {
		assert.Equal(t, valid, IsValidChainID(id), id)
	}
}
