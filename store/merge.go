package store

import "bytes"

// mergeIter walks the pending entries of a cache and the iterator of its
// backing store side by side. On equal keys the cache entry wins, and a
// deleted entry hides the backing value.
type mergeIter struct {
	cached     []*entry
	under      Iterator
	descending bool
}

var _ Iterator = (*mergeIter)(nil)

func newMergeIter(cached []*entry, under Iterator, descending bool) (*mergeIter, error) {
	it := &mergeIter{cached: cached, under: under, descending: descending}
	if err := it.skipDeleted(); err != nil {
		it.Close()
		return nil, err
	}
	return it, nil
}

func (m *mergeIter) underValid() bool {
	return m.under != nil && m.under.Valid()
}

func (m *mergeIter) Valid() bool {
	return len(m.cached) > 0 || m.underValid()
}

// order tells which source holds the next key. Negative is the cache,
// positive is the backing store and zero is both.
func (m *mergeIter) order() int {
	switch {
	case len(m.cached) == 0 && !m.underValid():
		panic("iterator is exhausted")
	case !m.underValid():
		return -1
	case len(m.cached) == 0:
		return 1
	}
	cmp := bytes.Compare(m.cached[0].key, m.under.Key())
	if m.descending {
		cmp = -cmp
	}
	return cmp
}

func (m *mergeIter) advance() error {
	o := m.order()
	if o <= 0 {
		m.cached = m.cached[1:]
	}
	if o >= 0 {
		return m.under.Next()
	}
	return nil
}

func (m *mergeIter) skipDeleted() error {
	for m.Valid() && m.order() <= 0 && m.cached[0].deleted {
		if err := m.advance(); err != nil {
			return err
		}
	}
	return nil
}

func (m *mergeIter) Next() error {
	if err := m.advance(); err != nil {
		return err
	}
	return m.skipDeleted()
}

func (m *mergeIter) Key() []byte {
	if m.order() <= 0 {
		return m.cached[0].key
	}
	return m.under.Key()
}

func (m *mergeIter) Value() []byte {
	if m.order() <= 0 {
		return m.cached[0].value
	}
	return m.under.Value()
}

func (m *mergeIter) Close() {
	if m.under != nil {
		m.under.Close()
	}
	m.cached = nil
}
