package orm

import (
	"bytes"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

const indexPrefix = "_i."

// index keeps references from an indexed value to primary keys. A unique
// index stores the primary key itself, otherwise a MultiRef is stored.
type index struct {
	name   string
	prefix []byte
	fn     Indexer
	unique bool
	owner  *bucket
}

var _ weave.QueryHandler = (*index)(nil)

func newIndex(owner *bucket, name string, fn Indexer, unique bool) *index {
	return &index{
		name:   name,
		prefix: []byte(indexPrefix + owner.name + "_" + name + ":"),
		fn:     fn,
		unique: unique,
		owner:  owner,
	}
}

func (i *index) dbKey(value []byte) []byte {
	out := make([]byte, 0, len(i.prefix)+len(value))
	out = append(out, i.prefix...)
	return append(out, value...)
}

func (i *index) valueOf(m Model) ([]byte, error) {
	if m == nil {
		return nil, nil
	}
	v, err := i.fn(m)
	if err != nil {
		return nil, errors.Wrapf(err, "index %s", i.name)
	}
	return v, nil
}

// change is a pending move of the reference to a primary key.
type change struct {
	idx           *index
	before, after []byte
}

// plan computes how the reference to pk moves when prev is replaced by
// next. Either model can be nil. A unique constraint violation is reported
// here, before anything is written.
func (i *index) plan(db weave.ReadOnlyKVStore, prev, next Model) (*change, error) {
	before, err := i.valueOf(prev)
	if err != nil {
		return nil, err
	}
	after, err := i.valueOf(next)
	if err != nil {
		return nil, err
	}
	if bytes.Equal(before, after) {
		return nil, nil
	}
	if i.unique && len(after) != 0 {
		taken, err := db.Has(i.dbKey(after))
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, errors.Wrapf(errors.ErrDuplicate, "index %s: %q", i.name, after)
		}
	}
	return &change{idx: i, before: before, after: after}, nil
}

func (c *change) apply(db weave.KVStore, pk []byte) error {
	if len(c.before) != 0 {
		if err := c.idx.remove(db, c.before, pk); err != nil {
			return err
		}
	}
	if len(c.after) != 0 {
		if err := c.idx.add(db, c.after, pk); err != nil {
			return err
		}
	}
	return nil
}

func (i *index) add(db weave.KVStore, value, pk []byte) error {
	key := i.dbKey(value)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if i.unique {
		if raw != nil {
			return errors.Wrapf(errors.ErrDuplicate, "index %s", i.name)
		}
		return db.Set(key, pk)
	}

	refs, err := i.decode(raw)
	if err != nil {
		return err
	}
	if err := refs.Add(pk); err != nil {
		return err
	}
	raw, err = refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(key, raw)
}

func (i *index) remove(db weave.KVStore, value, pk []byte) error {
	key := i.dbKey(value)
	raw, err := db.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "index %s: no reference to %X", i.name, pk)
	}
	if i.unique {
		if !bytes.Equal(raw, pk) {
			return errors.Wrapf(errors.ErrNotFound, "index %s: no reference to %X", i.name, pk)
		}
		return db.Delete(key)
	}

	refs, err := i.decode(raw)
	if err != nil {
		return err
	}
	if err := refs.Remove(pk); err != nil {
		return err
	}
	if len(refs.Refs) == 0 {
		return db.Delete(key)
	}
	raw, err = refs.Marshal()
	if err != nil {
		return err
	}
	return db.Set(key, raw)
}

func (i *index) decode(raw []byte) (*MultiRef, error) {
	var refs MultiRef
	if raw == nil {
		return &refs, nil
	}
	if err := refs.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "index %s: %s", i.name, err)
	}
	return &refs, nil
}

// refs returns the primary keys indexed under the value.
func (i *index) refs(db weave.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	raw, err := db.Get(i.dbKey(value))
	if err != nil || raw == nil {
		return nil, err
	}
	if i.unique {
		return [][]byte{raw}, nil
	}
	refs, err := i.decode(raw)
	if err != nil {
		return nil, err
	}
	return refs.Refs, nil
}

// Query returns the models referenced under the value given as data. With
// PrefixQueryMod all values starting with data are used.
func (i *index) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	var pks [][]byte
	switch mod {
	case weave.KeyQueryMod:
		refs, err := i.refs(db, data)
		if err != nil {
			return nil, err
		}
		pks = refs
	case weave.PrefixQueryMod:
		entries, err := scanPrefix(db, i.dbKey(data), func(_, raw []byte) weave.Model {
			return weave.Model{Value: raw}
		})
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if i.unique {
				pks = append(pks, e.Value)
				continue
			}
			refs, err := i.decode(e.Value)
			if err != nil {
				return nil, err
			}
			pks = append(pks, refs.Refs...)
		}
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}

	res := make([]weave.Model, 0, len(pks))
	for _, pk := range pks {
		key := i.owner.dbKey(pk)
		raw, err := db.Get(key)
		if err != nil {
			return nil, err
		}
		res = append(res, weave.Pair(key, raw))
	}
	return res, nil
}
