package orm

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
)

// Model is an entity that can be stored in a bucket.
type Model interface {
	weave.Persistent

	// Validate returns an error if the model must not be written.
	Validate() error

	// Copy returns a deep copy of the model.
	Copy() Model
}

// Indexer computes the value a model is indexed under. A nil value means
// the model is not indexed.
type Indexer func(Model) ([]byte, error)
