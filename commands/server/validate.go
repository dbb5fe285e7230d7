package server

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/app"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store"
)

// ValidateGenesis loads the app_state of every given genesis file into
// a throwaway store. The first failing file is reported.
func ValidateGenesis(ini weave.Initializer, genesisPaths []string) error {
	if len(genesisPaths) == 0 {
		return errors.Wrap(errors.ErrInput, "usage: validate <genesis.json>...")
	}
	for _, path := range genesisPaths {
		if err := validateGenesis(ini, path); err != nil {
			return errors.Wrap(err, path)
		}
	}
	return nil
}

func validateGenesis(ini weave.Initializer, path string) error {
	doc, err := app.LoadGenesis(path)
	if err != nil {
		return err
	}
	if _, err := doc.ChainID(); err != nil {
		return err
	}
	state, err := doc.AppState()
	if err != nil {
		return err
	}
	if err := ini.FromGenesis(state, store.MemStore()); err != nil {
		return errors.Wrap(err, "cannot initialize from genesis")
	}
	return nil
}
