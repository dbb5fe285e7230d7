package weave

import "fmt"

// Query modifiers. An empty modifier looks up one key, "prefix" returns
// every entry whose key starts with the query data.
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is a key and value returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler answers the ABCI queries of one path.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRouter maps query paths, such as "/deposits/tenant", to handlers.
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll lets every extension add its paths.
func (r QueryRouter) RegisterAll(registers ...func(QueryRouter)) {
	for _, register := range registers {
		register(r)
	}
}

// Register panics when path already has a handler.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, taken := r.routes[path]; taken {
		panic(fmt.Sprintf("query path %q is already registered", path))
	}
	r.routes[path] = h
}

// Handler returns nil for an unknown path.
func (r QueryRouter) Handler(path string) QueryHandler {
	return r.routes[path]
}
