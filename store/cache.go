package store

import (
	"bytes"

	"github.com/google/btree"
)

// DefaultFreeListSize is the number of btree nodes recycled between caches.
const DefaultFreeListSize = btree.DefaultFreeListSize

// entry is a pending write. A deleted entry hides the key of the
// backing store.
type entry struct {
	key     []byte
	value   []byte
	deleted bool
}

func (e *entry) Less(than btree.Item) bool {
	return bytes.Compare(e.key, than.(*entry).key) < 0
}

// Cache collects writes in an ordered btree on top of a read only store.
// Reads see the pending writes first. Write forwards them to the batch
// and Discard drops them.
type Cache struct {
	pending *btree.BTree
	free    *btree.FreeList
	back    ReadOnlyKVStore
	batch   Batch
}

var _ KVCacheWrap = Cache{}

// NewCache creates a cache over back that flushes into batch. A nil free
// list allocates a new one.
func NewCache(back ReadOnlyKVStore, batch Batch, free *btree.FreeList) Cache {
	if free == nil {
		free = btree.NewFreeList(DefaultFreeListSize)
	}
	return Cache{
		pending: btree.NewWithFreeList(2, free),
		free:    free,
		back:    back,
		batch:   batch,
	}
}

// MemStore returns an empty store living only in memory.
func MemStore() CacheableKVStore {
	var empty EmptyKVStore
	return NewCache(empty, empty.NewBatch(), nil)
}

// WithCache adds btree cache wrapping to any store.
func WithCache(kv KVStore) CacheableKVStore {
	return cacheable{kv}
}

type cacheable struct {
	KVStore
}

func (c cacheable) CacheWrap() KVCacheWrap {
	return NewCache(c.KVStore, NewNonAtomicBatch(c.KVStore), nil)
}

// CacheWrap stacks another cache that writes into this one.
func (c Cache) CacheWrap() KVCacheWrap {
	return NewCache(c, c.NewBatch(), c.free)
}

func (c Cache) NewBatch() Batch {
	return NewNonAtomicBatch(c)
}

func (c Cache) Write() error {
	err := c.batch.Write()
	c.Discard()
	return err
}

func (c Cache) Discard() {
	c.pending.Clear(true)
	if r, ok := c.batch.(interface{ Reset() }); ok {
		r.Reset()
	}
}

func (c Cache) Set(key, value []byte) error {
	c.pending.ReplaceOrInsert(&entry{key: key, value: value})
	return c.batch.Set(key, value)
}

func (c Cache) Delete(key []byte) error {
	c.pending.ReplaceOrInsert(&entry{key: key, deleted: true})
	return c.batch.Delete(key)
}

func (c Cache) lookup(key []byte) *entry {
	if it := c.pending.Get(&entry{key: key}); it != nil {
		return it.(*entry)
	}
	return nil
}

func (c Cache) Get(key []byte) ([]byte, error) {
	if e := c.lookup(key); e != nil {
		if e.deleted {
			return nil, nil
		}
		return e.value, nil
	}
	return c.back.Get(key)
}

func (c Cache) Has(key []byte) (bool, error) {
	if e := c.lookup(key); e != nil {
		return !e.deleted, nil
	}
	return c.back.Has(key)
}

func (c Cache) Iterator(start, end []byte) (Iterator, error) {
	under, err := c.back.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIter(c.snapshot(start, end, false), under, false)
}

func (c Cache) ReverseIterator(start, end []byte) (Iterator, error) {
	under, err := c.back.ReverseIterator(start, end)
	if err != nil {
		return nil, err
	}
	return newMergeIter(c.snapshot(start, end, true), under, true)
}

// snapshot copies the pending entries within [start, end) so that the
// cache can be written to while iterating. Nil bounds are open.
func (c Cache) snapshot(start, end []byte, descending bool) []*entry {
	var out []*entry
	collect := func(it btree.Item) bool {
		out = append(out, it.(*entry))
		return true
	}
	switch {
	case start == nil && end == nil:
		c.pending.Ascend(collect)
	case start == nil:
		c.pending.AscendLessThan(&entry{key: end}, collect)
	case end == nil:
		c.pending.AscendGreaterOrEqual(&entry{key: start}, collect)
	default:
		c.pending.AscendRange(&entry{key: start}, &entry{key: end}, collect)
	}
	if descending {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}
