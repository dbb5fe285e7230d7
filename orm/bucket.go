package orm

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,10}$`).MatchString

// ModelBucket stores models of a single type.
type ModelBucket interface {
	// One loads the model stored under key into dest. It returns
	// ErrNotFound when there is no such model and ErrType when dest is not
	// of the bucket model type.
	One(db weave.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if a model is stored under key, ErrNotFound
	// otherwise.
	Has(db weave.ReadOnlyKVStore, key []byte) error

	// ByIndex appends to dest all models referenced by the named index
	// under the given value. Dest must be a pointer to a slice of models.
	ByIndex(db weave.ReadOnlyKVStore, indexName string, value []byte, dest interface{}) error

	// Put validates and stores the model, updating all indexes.
	Put(db weave.KVStore, key []byte, m Model) error

	// Delete removes the model stored under key. It returns ErrNotFound if
	// there is none.
	Delete(db weave.KVStore, key []byte) error

	// Register exposes the bucket and its indexes to queries under
	// "/<name>" and "/<name>/<index>".
	Register(name string, r weave.QueryRouter)
}

// BucketOption configures a bucket created by NewModelBucket.
type BucketOption func(*bucket)

// WithIndex adds a secondary index. A unique index refuses to reference
// more than one model per value.
func WithIndex(name string, fn Indexer, unique bool) BucketOption {
	return func(b *bucket) {
		for _, idx := range b.indexes {
			if idx.name == name {
				panic(fmt.Sprintf("index %s registered twice", name))
			}
		}
		b.indexes = append(b.indexes, newIndex(b, name, fn, unique))
		sort.Slice(b.indexes, func(i, j int) bool {
			return b.indexes[i].name < b.indexes[j].name
		})
	}
}

type bucket struct {
	name    string
	prefix  []byte
	model   reflect.Type
	indexes []*index
}

var _ ModelBucket = (*bucket)(nil)
var _ weave.QueryHandler = (*bucket)(nil)

// NewModelBucket returns a bucket storing models of the same type as m.
// It panics if the name is not 3 to 10 lower case letters or underscores.
func NewModelBucket(name string, m Model, opts ...BucketOption) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("invalid bucket name: %q", name))
	}
	t := reflect.TypeOf(m)
	if t == nil || t.Kind() != reflect.Ptr {
		panic(fmt.Sprintf("bucket %s: model must be a pointer, got %T", name, m))
	}
	b := &bucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		model:  t,
	}
	for _, fn := range opts {
		fn(b)
	}
	return b
}

func (b *bucket) dbKey(key []byte) []byte {
	out := make([]byte, 0, len(b.prefix)+len(key))
	out = append(out, b.prefix...)
	return append(out, key...)
}

func (b *bucket) newModel() Model {
	return reflect.New(b.model.Elem()).Interface().(Model)
}

// get returns the model stored under key or nil.
func (b *bucket) get(db weave.ReadOnlyKVStore, key []byte) (Model, error) {
	raw, err := db.Get(b.dbKey(key))
	if err != nil || raw == nil {
		return nil, err
	}
	m := b.newModel()
	if err := m.Unmarshal(raw); err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "%s %X: %s", b.name, key, err)
	}
	return m, nil
}

func (b *bucket) One(db weave.ReadOnlyKVStore, key []byte, dest Model) error {
	if t := reflect.TypeOf(dest); t != b.model {
		return errors.Wrapf(errors.ErrType, "bucket %s cannot load into %s", b.name, t)
	}
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return err
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	if err := dest.Unmarshal(raw); err != nil {
		return errors.Wrapf(errors.ErrModel, "%s %X: %s", b.name, key, err)
	}
	return nil
}

func (b *bucket) Has(db weave.ReadOnlyKVStore, key []byte) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrNotFound, "empty key")
	}
	ok, err := db.Has(b.dbKey(key))
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return nil
}

func (b *bucket) ByIndex(db weave.ReadOnlyKVStore, indexName string, value []byte, dest interface{}) error {
	idx := b.index(indexName)
	if idx == nil {
		return errors.Wrapf(errors.ErrInput, "bucket %s has no index %q", b.name, indexName)
	}

	slice := reflect.ValueOf(dest)
	if slice.Kind() != reflect.Ptr || slice.IsNil() || slice.Elem().Kind() != reflect.Slice {
		return errors.Wrapf(errors.ErrType, "destination must be a pointer to a slice, got %T", dest)
	}
	if elem := slice.Elem().Type().Elem(); !b.model.AssignableTo(elem) {
		return errors.Wrapf(errors.ErrType, "bucket %s cannot load into %s", b.name, elem)
	}

	refs, err := idx.refs(db, value)
	if err != nil {
		return err
	}
	out := slice.Elem()
	for _, pk := range refs {
		m, err := b.get(db, pk)
		if err != nil {
			return err
		}
		if m == nil {
			return errors.Wrapf(errors.ErrDatabase, "index %s references missing %X", idx.name, pk)
		}
		out = reflect.Append(out, reflect.ValueOf(m))
	}
	slice.Elem().Set(out)
	return nil
}

func (b *bucket) Put(db weave.KVStore, key []byte, m Model) error {
	if t := reflect.TypeOf(m); t != b.model {
		return errors.Wrapf(errors.ErrType, "bucket %s cannot store %s", b.name, t)
	}
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "primary key")
	}
	if err := m.Validate(); err != nil {
		return errors.Wrapf(err, "%s %X", b.name, key)
	}
	raw, err := m.Marshal()
	if err != nil {
		return errors.Wrapf(errors.ErrModel, "%s %X: %s", b.name, key, err)
	}
	if err := b.reindex(db, key, m); err != nil {
		return err
	}
	return db.Set(b.dbKey(key), raw)
}

func (b *bucket) Delete(db weave.KVStore, key []byte) error {
	if err := b.Has(db, key); err != nil {
		return err
	}
	if err := b.reindex(db, key, nil); err != nil {
		return err
	}
	return db.Delete(b.dbKey(key))
}

// reindex moves the references of the model stored under key so that
// they point from the values of next. A nil next removes them. All
// indexes are checked before any of them is written.
func (b *bucket) reindex(db weave.KVStore, key []byte, next Model) error {
	if len(b.indexes) == 0 {
		return nil
	}
	prev, err := b.get(db, key)
	if err != nil {
		return err
	}
	var changes []*change
	for _, idx := range b.indexes {
		c, err := idx.plan(db, prev, next)
		if err != nil {
			return err
		}
		if c != nil {
			changes = append(changes, c)
		}
	}
	for _, c := range changes {
		if err := c.apply(db, key); err != nil {
			return err
		}
	}
	return nil
}

func (b *bucket) index(name string) *index {
	for _, idx := range b.indexes {
		if idx.name == name {
			return idx
		}
	}
	return nil
}

func (b *bucket) Register(name string, r weave.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
	for _, idx := range b.indexes {
		r.Register("/"+name+"/"+idx.name, idx)
	}
}

// Query returns the raw model stored under the key, or all models with a
// key starting with data when mod is PrefixQueryMod.
func (b *bucket) Query(db weave.ReadOnlyKVStore, mod string, data []byte) ([]weave.Model, error) {
	switch mod {
	case weave.KeyQueryMod:
		key := b.dbKey(data)
		raw, err := db.Get(key)
		if err != nil || raw == nil {
			return nil, err
		}
		return []weave.Model{weave.Pair(key, raw)}, nil
	case weave.PrefixQueryMod:
		return scanPrefix(db, b.dbKey(data), weave.Pair)
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}
