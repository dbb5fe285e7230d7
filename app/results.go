package app

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/gogo/protobuf/proto"
)

// ResultSet is the encoding of the key and of the value half of a query
// response.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

type resultSetProto ResultSet

func (r *resultSetProto) Reset()         { *r = resultSetProto{} }
func (r *resultSetProto) String() string { return proto.CompactTextString(r) }
func (*resultSetProto) ProtoMessage()    {}

func (r *ResultSet) Marshal() ([]byte, error) {
	return proto.Marshal((*resultSetProto)(r))
}

func (r *ResultSet) Unmarshal(raw []byte) error {
	return proto.Unmarshal(raw, (*resultSetProto)(r))
}

// SplitModels separates keys from values, keeping their order.
func SplitModels(models []weave.Model) (keys, values *ResultSet) {
	keys = &ResultSet{Results: make([][]byte, 0, len(models))}
	values = &ResultSet{Results: make([][]byte, 0, len(models))}
	for _, m := range models {
		keys.Results = append(keys.Results, m.Key)
		values.Results = append(values.Results, m.Value)
	}
	return keys, values
}

// JoinResults reverses SplitModels.
func JoinResults(keys, values *ResultSet) ([]weave.Model, error) {
	if n, m := len(keys.Results), len(values.Results); n != m {
		return nil, errors.Wrapf(errors.ErrInput, "%d keys for %d values", n, m)
	}
	models := make([]weave.Model, 0, len(keys.Results))
	for i, k := range keys.Results {
		models = append(models, weave.Pair(k, values.Results[i]))
	}
	return models, nil
}

// UnmarshalOneResult decodes the first value of an encoded ResultSet into
// dst. An empty set leaves dst untouched.
func UnmarshalOneResult(raw []byte, dst weave.Persistent) error {
	var set ResultSet
	if err := set.Unmarshal(raw); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if len(set.Results) == 0 {
		return nil
	}
	return dst.Unmarshal(set.Results[0])
}
