package orm

import "github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"

// scanPrefix collects every entry with a key starting with prefix.
func scanPrefix(db weave.ReadOnlyKVStore, prefix []byte, pair func(key, value []byte) weave.Model) ([]weave.Model, error) {
	start, end := prefixRange(prefix)
	itr, err := db.Iterator(start, end)
	if err != nil {
		return nil, err
	}
	defer itr.Close()

	var res []weave.Model
	for ; itr.Valid(); err = itr.Next() {
		if err != nil {
			return nil, err
		}
		res = append(res, pair(itr.Key(), itr.Value()))
	}
	return res, err
}

// prefixRange returns the iterator bounds covering all keys with the
// prefix. The end is nil when the prefix is all 0xff bytes.
func prefixRange(prefix []byte) ([]byte, []byte) {
	start := append([]byte(nil), prefix...)
	end := append([]byte(nil), prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] != 0xff {
			end[i]++
			return start, end[:i+1]
		}
	}
	return start, nil
}
