package weavetest

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store/iavl"
)

// CommitKVStore returns an iavl store backed by leveldb in a temporary
// directory, the same engine the daemon runs on. Call cleanup when done.
func CommitKVStore(t testing.TB) (db weave.CommitKVStore, cleanup func()) {
	t.Helper()
	dir, err := ioutil.TempDir("", "leased")
	if err != nil {
		t.Fatalf("cannot create temporary directory: %s", err)
	}
	return iavl.NewCommitStore(dir, "test"), func() { os.RemoveAll(dir) }
}
