/*
Package iavl persists the chain state in a versioned iavl tree stored in
goleveldb. Every Commit saves a new version whose root hash becomes the
app hash reported to tendermint.
*/
package iavl

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	"github.com/tendermint/iavl"
	dbm "github.com/tendermint/tendermint/libs/db"
)

// DefaultCacheSize is the number of tree nodes kept in memory.
const DefaultCacheSize = 10000

// CommitStore is a store.CommitKVStore over an iavl tree. Reads through
// Get see the last committed version. Writes go through CacheWrap into
// the working tree and become part of the next version.
type CommitStore struct {
	tree *iavl.MutableTree
}

var _ store.CommitKVStore = (*CommitStore)(nil)

// NewCommitStore opens, or creates, the leveldb database name in dir.
func NewCommitStore(dir, name string) *CommitStore {
	db, err := dbm.NewGoLevelDB(name, dir)
	if err != nil {
		panic(errors.Wrapf(errors.ErrDatabase, "open %s in %s: %s", name, dir, err))
	}
	return NewCommitStoreFromTree(iavl.NewMutableTree(db, DefaultCacheSize))
}

// NewMemCommitStore keeps every version in memory.
func NewMemCommitStore() *CommitStore {
	return NewCommitStoreFromTree(iavl.NewMutableTree(dbm.NewMemDB(), DefaultCacheSize))
}

// NewCommitStoreFromTree uses a tree that is already loaded, possibly at
// an older version when a block is replayed.
func NewCommitStoreFromTree(tree *iavl.MutableTree) *CommitStore {
	return &CommitStore{tree: tree}
}

func (s *CommitStore) Get(key []byte) ([]byte, error) {
	v := s.tree.Version()
	if v == 0 {
		return nil, nil
	}
	_, value := s.tree.GetVersioned(key, v)
	return value, nil
}

func (s *CommitStore) Commit() (store.CommitID, error) {
	hash, version, err := s.tree.SaveVersion()
	if err != nil {
		return store.CommitID{}, errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return store.CommitID{Version: version, Hash: hash}, nil
}

// LoadLatestVersion reads the newest version saved on disk. After a
// crash during Commit this is the last complete version.
func (s *CommitStore) LoadLatestVersion() error {
	if _, err := s.tree.Load(); err != nil {
		return errors.Wrap(errors.ErrDatabase, err.Error())
	}
	return nil
}

func (s *CommitStore) LatestVersion() (store.CommitID, error) {
	return store.CommitID{Version: s.tree.Version(), Hash: s.tree.Hash()}, nil
}

func (s *CommitStore) CacheWrap() store.KVCacheWrap {
	return s.Working().CacheWrap()
}

// Working exposes the uncommitted tree. Writes are applied directly and
// saved by the next Commit.
func (s *CommitStore) Working() store.CacheableKVStore {
	return store.WithCache(working{s.tree})
}
