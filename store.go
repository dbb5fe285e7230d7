package weave

// ReadOnlyKVStore reads keys and ordered key ranges. A missing key
// reads as a nil value.
type ReadOnlyKVStore interface {
	Get(key []byte) ([]byte, error)
	Has(key []byte) (bool, error)

	// Iterator walks [start, end) in ascending key order. A nil bound is
	// open. The range must not be written while the iterator is in use.
	Iterator(start, end []byte) (Iterator, error)
	// ReverseIterator walks [start, end) in descending key order.
	ReverseIterator(start, end []byte) (Iterator, error)
}

// SetDeleter is the write half shared by stores and batches. Neither
// keys nor values may be modified by the caller after the call.
type SetDeleter interface {
	Set(key, value []byte) error
	Delete(key []byte) error
}

// KVStore is what every handler gets to work on.
type KVStore interface {
	ReadOnlyKVStore
	SetDeleter
}

// Batch collects writes and applies them together on Write.
type Batch interface {
	SetDeleter
	Write() error
}

// Iterator is a cursor over a key range.
//
//	it, err := db.Iterator(nil, nil)
//	if err != nil {
//		return err
//	}
//	defer it.Close()
//	for it.Valid() {
//		use(it.Key(), it.Value())
//		if err := it.Next(); err != nil {
//			return err
//		}
//	}
//
// Key, Value and Next panic once Valid reported false.
type Iterator interface {
	Valid() bool
	Next() error
	Key() []byte
	Value() []byte
	Close()
}

// CacheableKVStore can stage writes in a layer on top of itself.
type CacheableKVStore interface {
	KVStore
	CacheWrap() KVCacheWrap
}

// KVCacheWrap is a staging layer. Reads see the staged writes, Write
// copies them to the parent store and Discard drops them. Layers nest,
// which is how a failed transaction is rolled back without touching the
// rest of the block.
type KVCacheWrap interface {
	CacheableKVStore
	Write() error
	Discard()
}

// CommitKVStore is the versioned root store of the application.
type CommitKVStore interface {
	// Get reads the last committed version.
	Get(key []byte) ([]byte, error)
	CacheWrap() KVCacheWrap

	// Commit persists the working state as a new version.
	Commit() (CommitID, error)
	// LoadLatestVersion opens the newest version that was fully
	// written.
	LoadLatestVersion() error
	LatestVersion() (CommitID, error)
}

// CommitID identifies a committed version by height and merkle root.
type CommitID struct {
	Version int64
	Hash    []byte
}
