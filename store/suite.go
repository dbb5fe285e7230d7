package store

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"sort"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest/assert"
)

// Suite checks the KVStore and cache wrap contract of a store
// implementation. It is shared by the btree cache and the iavl commit
// store tests.
type Suite struct {
	open func() (CacheableKVStore, func())
}

// NewSuite creates a suite. open must return an empty store and a
// function releasing it.
func NewSuite(open func() (base CacheableKVStore, cleanup func())) Suite {
	return Suite{open: open}
}

// Run executes every check as a subtest.
func (s Suite) Run(t *testing.T) {
	t.Run("GetSet", s.GetSet)
	t.Run("Layers", s.Layers)
	t.Run("Ranges", s.Ranges)
	t.Run("Random", s.Random)
}

// write is a Set, or a Delete when value is empty.
type write struct {
	key, value string
}

func apply(t testing.TB, db SetDeleter, writes ...write) {
	t.Helper()
	for _, w := range writes {
		if w.value == "" {
			assert.Nil(t, db.Delete([]byte(w.key)))
		} else {
			assert.Nil(t, db.Set([]byte(w.key), []byte(w.value)))
		}
	}
}

// ExpectValue fails unless kv holds want under key. A nil want
// expects the key to be missing.
func ExpectValue(t testing.TB, kv ReadOnlyKVStore, key, want []byte) {
	t.Helper()
	got, err := kv.Get(key)
	assert.Nil(t, err)
	assert.Equal(t, want, got)
	has, err := kv.Has(key)
	assert.Nil(t, err)
	assert.Equal(t, want != nil, has)
}

// ExpectIterator consumes iter and fails unless it returns exactly
// the expected models in order.
func ExpectIterator(t testing.TB, expected []Model, iter Iterator) {
	t.Helper()
	defer iter.Close()
	for i, m := range expected {
		if !iter.Valid() {
			t.Fatalf("iterator ended after %d of %d models", i, len(expected))
		}
		assert.Equal(t, m.Key, iter.Key())
		assert.Equal(t, m.Value, iter.Value())
		assert.Nil(t, iter.Next())
	}
	if iter.Valid() {
		t.Fatalf("unexpected key %q after %d models", iter.Key(), len(expected))
	}
}

func (s Suite) GetSet(t *testing.T) {
	base, cleanup := s.open()
	defer cleanup()

	tenant, landlord := []byte("acct:tenant"), []byte("acct:landlord")
	ExpectValue(t, base, tenant, nil)
	apply(t, base, write{"acct:tenant", "5000"})
	ExpectValue(t, base, tenant, []byte("5000"))

	cache := base.CacheWrap()
	ExpectValue(t, cache, tenant, []byte("5000"))
	apply(t, cache, write{"acct:landlord", "100"})
	ExpectValue(t, cache, landlord, []byte("100"))
	ExpectValue(t, base, landlord, nil)
	assert.Nil(t, cache.Write())
	ExpectValue(t, base, landlord, []byte("100"))

	discarded := base.CacheWrap()
	apply(t, discarded, write{"deposit:L-1", "held"})
	discarded.Discard()
	ExpectValue(t, base, []byte("deposit:L-1"), nil)

	deleting := base.CacheWrap()
	apply(t, deleting, write{key: "acct:tenant"})
	ExpectValue(t, deleting, tenant, nil)
	ExpectValue(t, base, tenant, []byte("5000"))
	assert.Nil(t, deleting.Write())
	ExpectValue(t, base, tenant, nil)
	ExpectValue(t, base, landlord, []byte("100"))
}

func (s Suite) Layers(t *testing.T) {
	base, cleanup := s.open()
	defer cleanup()

	apply(t, base, write{"a", "1"}, write{"b", "2"}, write{"c", "3"})
	parent := base.CacheWrap()
	apply(t, parent, write{"b", "20"}, write{key: "c"}, write{"d", "4"})
	child := parent.CacheWrap()
	apply(t, child, write{"a", "10"}, write{"c", "30"}, write{key: "d"})

	expect := func(kv ReadOnlyKVStore, values ...string) {
		t.Helper()
		for i, k := range []string{"a", "b", "c", "d"} {
			var want []byte
			if values[i] != "" {
				want = []byte(values[i])
			}
			ExpectValue(t, kv, []byte(k), want)
		}
	}
	expect(base, "1", "2", "3", "")
	expect(parent, "1", "20", "", "4")
	expect(child, "10", "20", "30", "")

	assert.Nil(t, child.Write())
	expect(parent, "10", "20", "30", "")
	expect(base, "1", "2", "3", "")

	assert.Nil(t, parent.Write())
	expect(base, "10", "20", "30", "")
}

func (s Suite) Ranges(t *testing.T) {
	cases := map[string]struct {
		base, cache []write
		start, end  string
		want        []string
	}{
		"cache only": {
			cache: []write{{"b", "2"}, {"a", "1"}, {"c", "3"}},
			want:  []string{"a=1", "b=2", "c=3"},
		},
		"base only": {
			base: []write{{"b", "2"}, {"a", "1"}},
			want: []string{"a=1", "b=2"},
		},
		"interleaved": {
			base:  []write{{"a", "1"}, {"c", "3"}},
			cache: []write{{"b", "2"}, {"d", "4"}},
			want:  []string{"a=1", "b=2", "c=3", "d=4"},
		},
		"overwrites win": {
			base:  []write{{"a", "1"}, {"b", "2"}},
			cache: []write{{"b", "two"}, {"a", "one"}},
			want:  []string{"a=one", "b=two"},
		},
		"deletes hide the base": {
			base:  []write{{"a", "1"}, {"b", "2"}, {"c", "3"}},
			cache: []write{{key: "a"}, {key: "c"}, {key: "z"}},
			want:  []string{"b=2"},
		},
		"everything deleted": {
			base:  []write{{"a", "1"}},
			cache: []write{{key: "a"}},
		},
		"bounded range": {
			base:  []write{{"a", "1"}, {"c", "3"}, {"e", "5"}},
			cache: []write{{"b", "2"}, {"d", "4"}, {key: "c"}},
			start: "b",
			end:   "e",
			want:  []string{"b=2", "d=4"},
		},
		"open start": {
			base:  []write{{"a", "1"}, {"c", "3"}},
			cache: []write{{"b", "2"}},
			end:   "c",
			want:  []string{"a=1", "b=2"},
		},
		"open end": {
			base:  []write{{"a", "1"}, {"c", "3"}},
			cache: []write{{"b", "2"}},
			start: "b",
			want:  []string{"b=2", "c=3"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			base, cleanup := s.open()
			defer cleanup()
			apply(t, base, tc.base...)
			cache := base.CacheWrap()
			apply(t, cache, tc.cache...)

			var start, end []byte
			if tc.start != "" {
				start = []byte(tc.start)
			}
			if tc.end != "" {
				end = []byte(tc.end)
			}
			want := parseModels(tc.want)

			iter, err := cache.Iterator(start, end)
			assert.Nil(t, err)
			ExpectIterator(t, want, iter)

			iter, err = cache.ReverseIterator(start, end)
			assert.Nil(t, err)
			ExpectIterator(t, reversed(want), iter)
		})
	}
}

// Random mixes random writes in the base and in a cache and compares
// both iteration orders with a plain map.
func (s Suite) Random(t *testing.T) {
	base, cleanup := s.open()
	defer cleanup()

	state := make(map[string][]byte)
	var keys [][]byte
	for i := 0; i < 60; i++ {
		k, v := randBytes(8), randBytes(24)
		assert.Nil(t, base.Set(k, v))
		state[string(k)] = v
		keys = append(keys, k)
	}

	cache := base.CacheWrap()
	for i, k := range keys[:30] {
		if i%3 == 0 {
			v := randBytes(24)
			assert.Nil(t, cache.Set(k, v))
			state[string(k)] = v
		} else {
			assert.Nil(t, cache.Delete(k))
			delete(state, string(k))
		}
	}
	for i := 0; i < 20; i++ {
		k, v := randBytes(8), randBytes(24)
		assert.Nil(t, cache.Set(k, v))
		state[string(k)] = v
	}

	want := sortedModels(state)
	iter, err := cache.Iterator(nil, nil)
	assert.Nil(t, err)
	ExpectIterator(t, want, iter)
	iter, err = cache.ReverseIterator(nil, nil)
	assert.Nil(t, err)
	ExpectIterator(t, reversed(want), iter)

	assert.Nil(t, cache.Write())
	iter, err = base.Iterator(nil, nil)
	assert.Nil(t, err)
	ExpectIterator(t, want, iter)
}

func randBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("random source: %s", err))
	}
	return b
}

// parseModels turns "key=value" strings into models.
func parseModels(pairs []string) []Model {
	var out []Model
	for _, p := range pairs {
		i := bytes.IndexByte([]byte(p), '=')
		out = append(out, Pair([]byte(p[:i]), []byte(p[i+1:])))
	}
	return out
}

func sortedModels(state map[string][]byte) []Model {
	out := make([]Model, 0, len(state))
	for k, v := range state {
		out = append(out, Pair([]byte(k), v))
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].Key, out[j].Key) < 0
	})
	return out
}

func reversed(models []Model) []Model {
	out := make([]Model, len(models))
	for i, m := range models {
		out[len(models)-1-i] = m
	}
	return out
}
