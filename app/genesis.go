package app

import (
	"encoding/json"
	"io/ioutil"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
)

const appStateKey = "app_state"

// GenesisDoc is a tendermint genesis file kept in its raw form.
// Only the chain id and the app_state section are interpreted,
// everything else is written back untouched.
type GenesisDoc map[string]json.RawMessage

// LoadGenesis reads and parses the genesis file at the given path.
func LoadGenesis(path string) (GenesisDoc, error) {
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrDatabase, "read genesis: %s", err)
	}
	var doc GenesisDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "parse genesis: %s", err)
	}
	return doc, nil
}

// Save writes the genesis document to the given path.
func (g GenesisDoc) Save(path string) error {
	raw, err := json.MarshalIndent(g, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	if err := ioutil.WriteFile(path, raw, 0600); err != nil {
		return errors.Wrapf(errors.ErrDatabase, "write genesis: %s", err)
	}
	return nil
}

// ChainID returns the chain_id declared in the genesis.
func (g GenesisDoc) ChainID() (string, error) {
	var id string
	if err := json.Unmarshal(g["chain_id"], &id); err != nil {
		return "", errors.Wrapf(errors.ErrInput, "chain_id: %s", err)
	}
	if !weave.IsValidChainID(id) {
		return "", errors.Wrapf(errors.ErrInput, "chain_id: %q", id)
	}
	return id, nil
}

// AppState returns the application section of the genesis.
// ErrEmpty is returned when it was never set.
func (g GenesisDoc) AppState() (weave.Options, error) {
	raw := g[appStateKey]
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errors.Wrap(errors.ErrEmpty, appStateKey)
	}
	var opts weave.Options
	if err := json.Unmarshal(raw, &opts); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "%s: %s", appStateKey, err)
	}
	return opts, nil
}

// SetAppState replaces the application section of the genesis.
// It refuses to overwrite an existing one.
func (g GenesisDoc) SetAppState(state json.RawMessage) error {
	if _, err := g.AppState(); !errors.ErrEmpty.Is(err) {
		return errors.Wrap(errors.ErrDuplicate, appStateKey)
	}
	if !json.Valid(state) {
		return errors.Wrap(errors.ErrInput, "app state is not valid json")
	}
	g[appStateKey] = state
	return nil
}
