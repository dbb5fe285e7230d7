package app

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/commands/server"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/crypto"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/deposit"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/ledger"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// DevBalance is issued to every account created by GenInitOptions.
const DevBalance = 1000000

// GenInitOptions produces the app_state for a development chain. Every
// argument is an address (hex, "bech32:" or "cond:" prefixed) that is
// funded with DevBalance. Without arguments a new key is generated and
// printed, so that the funds can be spent.
func GenInitOptions(args []string) (json.RawMessage, error) {
	var accounts []ledger.GenesisAccount
	for _, enc := range args {
		addr, err := weave.ParseAddress(enc)
		if err != nil {
			return nil, errors.Wrapf(err, "account %q", enc)
		}
		if err := addr.Validate(); err != nil {
			return nil, errors.Wrapf(err, "account %q", enc)
		}
		accounts = append(accounts, ledger.GenesisAccount{Address: addr, Balance: DevBalance})
	}

	if len(accounts) == 0 {
		key, addr := GenerateKey()
		fmt.Printf("Generated key %s for address %s\n", hex.EncodeToString(key.Ed25519), addr)
		accounts = append(accounts, ledger.GenesisAccount{Address: addr, Balance: DevBalance})
	}

	return json.Marshal(map[string]interface{}{
		"ledger":  accounts,
		"deposit": []deposit.GenesisDeposit{},
	})
}

// GenerateKey returns a new private key together with its address.
func GenerateKey() (*crypto.PrivateKey, weave.Address) {
	key := crypto.GenPrivKeyEd25519()
	return key, key.PublicKey().Address()
}

// GenerateApp is used to create a stub for server/start.go command
func GenerateApp(options *server.Options) (abci.Application, error) {
	// db goes in a subdir, but "" -> "" for memdb
	var dbPath string
	if options.Home != "" {
		dbPath = filepath.Join(options.Home, "abci.db")
	}
	kv, err := CommitKVStore(dbPath)
	if err != nil {
		return nil, err
	}
	application := Application(kv, options.Debug)
	application.WithLogger(options.Logger)
	return application, nil
}

// InlineApp builds the application on an existing store. It is used to
// replay blocks.
func InlineApp(kv weave.CommitKVStore, logger log.Logger, debug bool) abci.Application {
	application := Application(kv, debug)
	application.WithLogger(logger)
	return application
}
