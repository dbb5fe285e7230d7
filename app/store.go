package app

import (
	"encoding/json"
	"fmt"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the state related half of abci.Application: the
// handshake, the genesis, queries and commits. BaseApp embeds it and
// adds transaction processing.
//
// ABCI calls that do not carry user input cannot report errors back to
// tendermint, so StoreApp panics on them.
type StoreApp struct {
	name   string
	logger log.Logger
	state  *blockState
	init   weave.Initializer
	query  weave.QueryRouter

	chainID string
	// root is valid for the whole lifetime of the process.
	root weave.Context
	// block is rebuilt from root on every BeginBlock.
	block weave.Context
}

// NewStoreApp loads the latest version of kv. It panics when the stored
// state cannot be read.
func NewStoreApp(name string, kv weave.CommitKVStore, qr weave.QueryRouter, ctx weave.Context) *StoreApp {
	state, err := loadBlockState(kv)
	if err != nil {
		panic(err)
	}
	s := &StoreApp{name: name, state: state, query: qr, root: ctx}
	s.WithLogger(log.NewNopLogger())

	if s.chainID, err = loadChainID(state.deliver); err != nil {
		panic(err)
	}
	if s.chainID != "" {
		s.root = weave.WithChainID(s.root, s.chainID)
	}

	last, err := state.latest()
	if err != nil {
		panic(err)
	}
	s.block = weave.WithHeight(s.root, last.Version)
	return s
}

// WithInit sets the genesis loader.
func (s *StoreApp) WithInit(init weave.Initializer) *StoreApp {
	s.init = init
	return s
}

// WithLogger replaces the logger of the application and of every context
// created from now on.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.root = weave.WithLogger(s.root, logger)
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// GetChainID is empty until the genesis was loaded.
func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// BlockContext is the context of the block being processed.
func (s *StoreApp) BlockContext() weave.Context {
	return s.block
}

func (s *StoreApp) DeliverStore() weave.CacheableKVStore {
	return s.state.deliver
}

func (s *StoreApp) CheckStore() weave.CacheableKVStore {
	return s.state.check
}

// Info reports the last committed height together with its app hash,
// used by tendermint to decide which blocks must be replayed.
func (s *StoreApp) Info(abci.RequestInfo) abci.ResponseInfo {
	last, err := s.state.latest()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Info synced", "height", last.Version, "hash", fmt.Sprintf("%X", last.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		LastBlockHeight:  last.Version,
		LastBlockAppHash: last.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "Not Implemented"}
}

// InitChain loads the app_state of the genesis file. It is called once in
// the life of a chain, never on restarts.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	if err := s.loadGenesis(req.ChainId, req.AppStateBytes); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

func (s *StoreApp) loadGenesis(chainID string, raw []byte) error {
	switch {
	case s.chainID != "":
		return errors.Wrapf(errors.ErrState, "genesis already loaded for chain %s", s.chainID)
	case len(raw) == 0:
		return errors.Wrap(errors.ErrState, "app_state missing in genesis, run init first")
	case s.init == nil:
		return errors.Wrap(errors.ErrHuman, "no genesis initializer")
	}

	var opts weave.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	db := s.state.deliver
	if err := storeChainID(db, chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.root = weave.WithChainID(s.root, chainID)
	s.block = weave.WithChainID(s.block, chainID)
	return s.init.FromGenesis(opts, db)
}

// BeginBlock builds the context every transaction of the block is
// processed with.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	ctx := weave.WithHeader(s.root, req.Header)
	s.block = weave.WithHeight(ctx, req.Header.GetHeight())
	return abci.ResponseBeginBlock{}
}

// EndBlock never changes the validator set.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}

func (s *StoreApp) Commit() abci.ResponseCommit {
	id, err := s.state.commit()
	if err != nil {
		panic(err)
	}
	s.logger.Info("Commit synced", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}
