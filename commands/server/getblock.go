package server

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/blockchain"
	dbm "github.com/tendermint/tendermint/libs/db"
	ctypes "github.com/tendermint/tendermint/rpc/core/types"
)

const flagHeight = "height"

var cdc = amino.NewCodec()

func init() {
	ctypes.RegisterAmino(cdc)
}

// GetBlockCmd prints a block from tendermint's blockstore.db as JSON.
// The latest block is used unless -height is given. The output can be
// fed to RetryCmd.
func GetBlockCmd(out io.Writer, args []string) error {
	if len(args) == 0 {
		return errors.Wrap(errors.ErrInput, "usage: getblock <path to blockstore.db> [-height=H]")
	}
	var height int64
	fs := flag.NewFlagSet("getblock", flag.ContinueOnError)
	fs.Int64Var(&height, flagHeight, 0, "height of the block to extract (default latest)")
	if err := fs.Parse(args[1:]); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	db, err := openDB(args[0])
	if err != nil {
		return err
	}
	defer db.Close()

	blocks := blockchain.NewBlockStore(db)
	if height == 0 {
		height = blocks.Height()
	}
	block := blocks.LoadBlock(height)
	if block == nil {
		return errors.Wrapf(errors.ErrNotFound, "block at height %d", height)
	}
	raw, err := cdc.MarshalJSONIndent(block, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	_, err = fmt.Fprintln(out, string(raw))
	return err
}

// openDB opens a leveldb directory given with its .db suffix, the way
// tendermint lays them out under data/.
func openDB(path string) (dbm.DB, error) {
	path = strings.TrimSuffix(filepath.Clean(path), string(filepath.Separator))
	if filepath.Ext(path) != ".db" {
		return nil, errors.Wrapf(errors.ErrInput, "database directory must end with .db: %s", path)
	}
	dir, name := filepath.Split(strings.TrimSuffix(path, ".db"))
	if name == "" {
		return nil, errors.Wrapf(errors.ErrInput, "no database name in %s", path)
	}
	db, err := dbm.NewGoLevelDB(name, filepath.Clean(dir))
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "open %s: %s", path, err)
	}
	return db, nil
}
