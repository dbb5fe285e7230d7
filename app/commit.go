package app

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

// blockState keeps the committed tree together with the two scratch
// layers the ABCI phases write into. Tendermint never calls the
// application concurrently, so no locking happens here.
type blockState struct {
	tree    weave.CommitKVStore
	deliver weave.KVCacheWrap
	check   weave.KVCacheWrap
}

func loadBlockState(tree weave.CommitKVStore) (*blockState, error) {
	if err := tree.LoadLatestVersion(); err != nil {
		return nil, errors.Wrap(err, "load latest version")
	}
	s := &blockState{tree: tree}
	s.reset()
	return s, nil
}

func (s *blockState) reset() {
	s.deliver = s.tree.CacheWrap()
	s.check = s.tree.CacheWrap()
}

func (s *blockState) latest() (weave.CommitID, error) {
	return s.tree.LatestVersion()
}

// commit persists everything delivered in this block. Pending check
// state is dropped, mempool transactions are rechecked against the new
// version.
func (s *blockState) commit() (weave.CommitID, error) {
	if err := s.deliver.Write(); err != nil {
		return weave.CommitID{}, errors.Wrap(err, "flush deliver state")
	}
	s.check.Discard()
	id, err := s.tree.Commit()
	if err != nil {
		return id, err
	}
	s.reset()
	return id, nil
}

var chainIDKey = []byte("_app:chain_id")

func loadChainID(db weave.ReadOnlyKVStore) (string, error) {
	raw, err := db.Get(chainIDKey)
	if err != nil {
		return "", errors.Wrap(err, "load chain id")
	}
	return string(raw), nil
}

// storeChainID writes the chain id once. The genesis is the only place
// where it is ever set.
func storeChainID(db weave.KVStore, chainID string) error {
	if !weave.IsValidChainID(chainID) {
		return errors.Wrapf(errors.ErrInput, "chain id %q", chainID)
	}
	switch ok, err := db.Has(chainIDKey); {
	case err != nil:
		return errors.Wrap(err, "load chain id")
	case ok:
		return errors.Wrap(errors.ErrImmutable, "chain id already set")
	}
	return db.Set(chainIDKey, []byte(chainID))
}
