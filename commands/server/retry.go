package server

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"io/ioutil"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	iavlstore "github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store/iavl"
	"github.com/tendermint/iavl"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
	"github.com/tendermint/tendermint/types"
)

const (
	flagUntilError = "error"
	flagMaxTries   = "max"
)

// StoreAppGenerator builds the application on top of an already opened
// store. RetryCmd uses it to replay a block against rolled back state.
type StoreAppGenerator func(db weave.CommitKVStore, logger log.Logger, debug bool) abci.Application

type retryArgs struct {
	dbPath     string
	blockPath  string
	debug      bool
	untilError bool
	maxTries   int
}

func parseRetryArgs(args []string) (retryArgs, error) {
	if len(args) < 2 {
		return retryArgs{}, errors.Wrap(errors.ErrInput,
			"usage: retry <path to abci.db> <path to block.json> [-debug] [-error] [-max=N]")
	}
	res := retryArgs{dbPath: args[0], blockPath: args[1]}
	fs := flag.NewFlagSet("retry", flag.ContinueOnError)
	fs.BoolVar(&res.debug, flagDebug, false, "call stack returned on error")
	fs.BoolVar(&res.untilError, flagUntilError, false, "replay until the app hash differs")
	fs.IntVar(&res.maxTries, flagMaxTries, 10, "replay limit when -error is set")
	if err := fs.Parse(args[2:]); err != nil {
		return res, errors.Wrap(errors.ErrInput, err.Error())
	}
	return res, nil
}

// RetryCmd replays the last block on top of the application state. The
// block is the JSON written by GetBlockCmd and its height must match
// the latest version in abci.db. The state is rolled back one version,
// the block is delivered again and the resulting app hash is printed.
//
// With -error the replay is repeated until the hash differs, which
// helps to find nondeterministic handlers.
func RetryCmd(gen StoreAppGenerator, logger log.Logger, out io.Writer, args []string) error {
	flags, err := parseRetryArgs(args)
	if err != nil {
		return err
	}

	raw, err := ioutil.ReadFile(flags.blockPath)
	if err != nil {
		return errors.Wrapf(errors.ErrInput, "read block: %s", err)
	}
	var block types.Block
	if err := cdc.UnmarshalJSON(raw, &block); err != nil {
		return errors.Wrapf(errors.ErrInput, "decode block: %s", err)
	}

	db, err := openDB(flags.dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	tree := iavl.NewMutableTree(db, iavlstore.DefaultCacheSize)
	version, err := tree.Load()
	if err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	if version == 0 {
		return errors.Wrap(errors.ErrState, "application state is empty")
	}
	if version != block.Height {
		return errors.Wrapf(errors.ErrState, "block height %d, state height %d", block.Height, version)
	}

	want := tree.Hash()
	fmt.Fprintf(out, "Height: %d\nOriginal hash: %X\n", block.Height, want)
	for tries := 0; ; tries++ {
		if _, err := tree.LoadVersionForOverwriting(block.Height - 1); err != nil {
			return errors.Wrap(errors.ErrDatabase, err.Error())
		}
		app := gen(iavlstore.NewCommitStoreFromTree(tree), logger, flags.debug)
		got := replay(app, &block, out)
		if !bytes.Equal(want, got) || !flags.untilError || tries >= flags.maxTries {
			return nil
		}
	}
}

// replay delivers all transactions of the block again and returns the
// resulting app hash. The state must be at the parent of the block.
func replay(app abci.Application, block *types.Block, out io.Writer) []byte {
	app.BeginBlock(abci.RequestBeginBlock{
		Hash:   block.Hash(),
		Header: types.TM2PB.Header(&block.Header),
	})
	for i, tx := range block.Txs {
		res := app.DeliverTx(tx)
		fmt.Fprintf(out, "tx %d: code=%d %s\n", i, res.Code, res.Log)
	}
	app.EndBlock(abci.RequestEndBlock{Height: block.Height})
	hash := app.Commit().Data
	fmt.Fprintf(out, "Replayed hash: %X\n", hash)
	return hash
}
