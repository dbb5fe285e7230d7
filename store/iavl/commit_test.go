package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/weavetest/assert"
)

func openDisk(t testing.TB) (*CommitStore, func()) {
	dir, err := ioutil.TempDir("", "iavl-store-")
	assert.Nil(t, err)
	return NewCommitStore(dir, "state"), func() { os.RemoveAll(dir) }
}

func TestWorkingTree(t *testing.T) {
	store.NewSuite(func() (store.CacheableKVStore, func()) {
		return NewMemCommitStore().Working(), func() {}
	}).Run(t)
}

func TestCommitVersions(t *testing.T) {
	commit, cleanup := openDisk(t)
	defer cleanup()

	tenant, landlord, lease := []byte("acct:tenant"), []byte("acct:landlord"), []byte("deposit:lease123")

	id, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)
	assert.Equal(t, 0, len(id.Hash))

	genesis := commit.CacheWrap()
	assert.Nil(t, genesis.Set(tenant, []byte("10000")))
	assert.Nil(t, genesis.Set(landlord, []byte("10000")))
	assert.Nil(t, genesis.Write())

	// written to the working tree but not committed
	store.ExpectValue(t, commit.Working(), tenant, []byte("10000"))
	got, err := commit.Get(tenant)
	assert.Nil(t, err)
	assert.Nil(t, got)

	first, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), first.Version)
	got, err = commit.Get(tenant)
	assert.Nil(t, err)
	assert.Equal(t, []byte("10000"), got)

	block := commit.CacheWrap()
	assert.Nil(t, block.Set(tenant, []byte("9000")))
	assert.Nil(t, block.Set(lease, []byte("held")))
	assert.Nil(t, block.Delete(landlord))

	observer := commit.CacheWrap()
	store.ExpectValue(t, observer, tenant, []byte("10000"))
	store.ExpectValue(t, observer, landlord, []byte("10000"))
	store.ExpectValue(t, observer, lease, nil)

	assert.Nil(t, block.Write())
	store.ExpectValue(t, observer, tenant, []byte("9000"))
	store.ExpectValue(t, observer, landlord, nil)
	store.ExpectValue(t, observer, lease, []byte("held"))

	second, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(2), second.Version)
	if string(first.Hash) == string(second.Hash) {
		t.Fatal("a state change must change the hash")
	}
}

func TestLatestVersion(t *testing.T) {
	commit, cleanup := openDisk(t)
	defer cleanup()

	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set([]byte("deposit:lease123"), []byte("held")))
	assert.Nil(t, cache.Write())
	want, err := commit.Commit()
	assert.Nil(t, err)

	mem := NewMemCommitStore()
	assert.Nil(t, mem.LoadLatestVersion())
	id, err := mem.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, int64(0), id.Version)

	got, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, want, got)
}
