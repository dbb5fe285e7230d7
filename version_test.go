package weave_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
)

func TestVersion(t *testing.T) {
	defer func() { weave.GitCommit = "" }()

	weave.GitCommit = ""
	assert.Equal(t, "v0.1.0-dev", weave.Version())

	weave.GitCommit = "12345678"
	assert.Equal(t, "v0.1.0-dev 12345678", weave.Version())
}
