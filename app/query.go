package app

import (
	"strings"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// Query reads the last committed state. The request height is ignored.
//
// The path selects a bucket ("/deposits") or one of its indexes
// ("/deposits/landlord"). A "?prefix" suffix turns the lookup into a
// prefix scan. Key and Value of the response are ResultSets of equal
// length.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	path, mod := req.Path, ""
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path, mod = path[:i], path[i+1:]
	}
	h := s.query.Handler(path)
	if h == nil {
		return weave.QueryError(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path), false)
	}

	last, err := s.state.latest()
	if err != nil {
		return weave.QueryError(err, false)
	}
	db := s.state.tree.CacheWrap()
	defer db.Discard()

	models, err := h.Query(db, mod, req.Data)
	if err != nil {
		return weave.QueryError(err, false)
	}
	keys, values := SplitModels(models)
	res := abci.ResponseQuery{Height: last.Version}
	if res.Key, err = keys.Marshal(); err != nil {
		return weave.QueryError(err, false)
	}
	if res.Value, err = values.Marshal(); err != nil {
		return weave.QueryError(err, false)
	}
	return res
}
