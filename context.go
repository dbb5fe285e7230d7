/*
Package weave holds the contracts that tie the lease chain together:
transactions and messages, handlers and decorators, the key value store
interfaces, addresses and the values carried in the request context.

The application stores per block data in a context.Context. Every value
has a With function that sets it once, and a Get function to read it.
Setting the same value twice panics, so a decorator cannot change the
height or chain ID a handler sees.
*/
package weave

import (
	"context"
	"fmt"
	"regexp"

	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// Context is the request context passed to handlers.
type Context = context.Context

type ctxKey string

const (
	headerKey  ctxKey = "header"
	heightKey  ctxKey = "height"
	chainIDKey ctxKey = "chain_id"
	loggerKey  ctxKey = "logger"
)

var (
	// DefaultLogger is returned by GetLogger when no logger was set.
	DefaultLogger = log.NewNopLogger()

	// IsValidChainID accepts 6 to 20 letters, digits, '_' or '-'.
	IsValidChainID = regexp.MustCompile(`^[a-zA-Z0-9_\-]{6,20}$`).MatchString
)

// setOnce stores val under key and panics if key was set before.
func setOnce(ctx Context, key ctxKey, val interface{}) Context {
	if ctx.Value(key) != nil {
		panic(fmt.Sprintf("%s is already set", key))
	}
	return context.WithValue(ctx, key, val)
}

func WithHeader(ctx Context, h abci.Header) Context {
	return setOnce(ctx, headerKey, h)
}

func GetHeader(ctx Context) (abci.Header, bool) {
	h, ok := ctx.Value(headerKey).(abci.Header)
	return h, ok
}

// WithHeight sets the height of the block being processed. Deposits
// record it as their creation and release date.
func WithHeight(ctx Context, height int64) Context {
	return setOnce(ctx, heightKey, height)
}

func GetHeight(ctx Context) (int64, bool) {
	h, ok := ctx.Value(heightKey).(int64)
	return h, ok
}

// WithChainID panics on an invalid chain ID. Signatures are bound to it.
func WithChainID(ctx Context, chainID string) Context {
	if !IsValidChainID(chainID) {
		panic(fmt.Sprintf("invalid chain ID %q", chainID))
	}
	return setOnce(ctx, chainIDKey, chainID)
}

// GetChainID panics when the chain ID is missing. The application sets
// it for every request, so a missing value is a programming error.
func GetChainID(ctx Context) string {
	id, ok := ctx.Value(chainIDKey).(string)
	if !ok {
		panic("chain ID is not set")
	}
	return id
}

// WithLogger replaces the logger. Unlike the other values it may be set
// many times.
func WithLogger(ctx Context, logger log.Logger) Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithLogInfo adds key value pairs to every following log line.
func WithLogInfo(ctx Context, keyvals ...interface{}) Context {
	return WithLogger(ctx, GetLogger(ctx).With(keyvals...))
}

func GetLogger(ctx Context) log.Logger {
	if l, ok := ctx.Value(loggerKey).(log.Logger); ok {
		return l
	}
	return DefaultLogger
}
