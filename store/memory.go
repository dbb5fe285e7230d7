package store

// EmptyKVStore holds nothing and ignores writes. It is the bottom layer
// of MemStore.
type EmptyKVStore struct{}

var _ KVStore = EmptyKVStore{}

func (EmptyKVStore) Get([]byte) ([]byte, error) { return nil, nil }
func (EmptyKVStore) Has([]byte) (bool, error)   { return false, nil }
func (EmptyKVStore) Set(_, _ []byte) error      { return nil }
func (EmptyKVStore) Delete([]byte) error        { return nil }
func (e EmptyKVStore) NewBatch() Batch          { return NewNonAtomicBatch(e) }
func (EmptyKVStore) Iterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}
func (EmptyKVStore) ReverseIterator(_, _ []byte) (Iterator, error) {
	return NewSliceIterator(nil), nil
}

// SliceIterator iterates over models already loaded in memory.
type SliceIterator struct {
	rest []Model
}

var _ Iterator = (*SliceIterator)(nil)

func NewSliceIterator(models []Model) *SliceIterator {
	return &SliceIterator{rest: models}
}

func (s *SliceIterator) Valid() bool { return len(s.rest) > 0 }

func (s *SliceIterator) head() Model {
	if len(s.rest) == 0 {
		panic("iterator is exhausted")
	}
	return s.rest[0]
}

func (s *SliceIterator) Next() error {
	s.head()
	s.rest = s.rest[1:]
	return nil
}

func (s *SliceIterator) Key() []byte   { return s.head().Key }
func (s *SliceIterator) Value() []byte { return s.head().Value }
func (s *SliceIterator) Close()        { s.rest = nil }

// NonAtomicBatch queues writes and replays them on Write. Use it only
// over in-memory layers: a failure halfway leaves the target partially
// written.
type NonAtomicBatch struct {
	out SetDeleter
	ops []func(SetDeleter) error
}

var _ Batch = (*NonAtomicBatch)(nil)

func NewNonAtomicBatch(out SetDeleter) *NonAtomicBatch {
	return &NonAtomicBatch{out: out}
}

func (b *NonAtomicBatch) Set(key, value []byte) error {
	b.ops = append(b.ops, func(db SetDeleter) error { return db.Set(key, value) })
	return nil
}

func (b *NonAtomicBatch) Delete(key []byte) error {
	b.ops = append(b.ops, func(db SetDeleter) error { return db.Delete(key) })
	return nil
}

// Len is the number of queued writes.
func (b *NonAtomicBatch) Len() int { return len(b.ops) }

func (b *NonAtomicBatch) Reset() { b.ops = nil }

func (b *NonAtomicBatch) Write() error {
	defer b.Reset()
	for _, op := range b.ops {
		if err := op(b.out); err != nil {
			return err
		}
	}
	return nil
}
