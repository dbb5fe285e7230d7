package server

import (
	"encoding/json"
	"flag"
	"os"
	"path/filepath"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/app"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/tendermint/tendermint/libs/log"
)

const (
	flagForce = "f"
)

// GenInitOptions builds the app_state of the genesis file. Remaining
// command line arguments are passed through, so the application can
// decide how to interpret them.
type GenInitOptions func(args []string) (json.RawMessage, error)

// GenesisPath returns where tendermint keeps the genesis file for
// given home directory.
func GenesisPath(home string) string {
	return filepath.Join(home, "config", "genesis.json")
}

// InitCmd writes the application state into the genesis file created by
// `tendermint init`. An existing app_state is only replaced when -f is
// passed.
func InitCmd(gen GenInitOptions, logger log.Logger, home string, args []string) error {
	var force bool
	initFlags := flag.NewFlagSet("init", flag.ContinueOnError)
	initFlags.BoolVar(&force, flagForce, false, "overwrite an existing app_state")
	if err := initFlags.Parse(args); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}

	genFile := GenesisPath(home)
	if _, err := os.Stat(genFile); err != nil {
		return errors.Wrapf(errors.ErrNotFound, "%s, run tendermint init first", genFile)
	}
	doc, err := app.LoadGenesis(genFile)
	if err != nil {
		return err
	}
	if force {
		delete(doc, "app_state")
	}

	state, err := gen(initFlags.Args())
	if err != nil {
		return errors.Wrap(err, "generate app state")
	}
	if err := doc.SetAppState(state); err != nil {
		return errors.Wrap(err, "use -f to overwrite")
	}
	if err := doc.Save(genFile); err != nil {
		return err
	}
	logger.Info("App state written", "path", genFile)
	return nil
}
