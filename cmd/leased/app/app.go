/*
Package app wires the ledger and the deposit registry into an ABCI
application. Transactions are authenticated with ed25519 signatures,
every deposit operation is executed by the signer of the transaction.
*/
package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/app"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/errors"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/store/iavl"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/deposit"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/ledger"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/sigs"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/utils"
)

// Name is reported by abci.Info.
const Name = "leased"

// Authenticator returns the typical authentication,
// just using public key signatures
func Authenticator() x.Authenticator {
	return sigs.Authenticate{}
}

// LedgerControl returns the controller of all party balances.
func LedgerControl() ledger.Controller {
	return ledger.NewController(ledger.NewAccountBucket())
}

// DepositControl returns the deposit registry, moving funds through the
// given ledger.
func DepositControl(bank ledger.Controller) deposit.Controller {
	return deposit.NewController(deposit.NewBucket(), bank)
}

// Chain returns a chain of decorators, to handle authentication,
// logging and recovery
func Chain() app.Decorators {
	return app.ChainDecorators(
		utils.NewLogging(),
		utils.NewRecovery(),
		utils.NewActionTagger(),
		// on CheckTx, bad tx don't affect state
		utils.NewSavepoint().OnCheck(),
		sigs.NewDecorator(),
		// on DeliverTx, bad tx will increment nonce even if the
		// message fails
		utils.NewSavepoint().OnDeliver(),
	)
}

// Router dispatches all ledger and deposit messages.
func Router(auth x.Authenticator) *app.Router {
	bank := LedgerControl()
	r := app.NewRouter()
	ledger.RegisterRoutes(r, auth, bank)
	deposit.RegisterRoutes(r, auth, DepositControl(bank))
	return r
}

// QueryRouter exposes "/accounts", "/deposits" with its tenant and
// landlord indexes, and "/auth".
func QueryRouter() weave.QueryRouter {
	r := weave.NewQueryRouter()
	r.RegisterAll(
		ledger.RegisterQuery,
		deposit.RegisterQuery,
		sigs.RegisterQuery,
	)
	return r
}

// Stack wires up a standard router with a standard decorator
// chain. This can be passed into BaseApp.
func Stack() weave.Handler {
	auth := Authenticator()
	return Chain().WithHandler(Router(auth))
}

// Initializer loads the genesis balances before the genesis deposits,
// so a deposit cannot reference funds that were never issued.
func Initializer() weave.Initializer {
	bank := LedgerControl()
	return weave.ChainInitializers(
		ledger.NewInitializer(bank),
		deposit.NewInitializer(DepositControl(bank)),
	)
}

// Application constructs the ABCI application on top of the given store.
func Application(kv weave.CommitKVStore, debug bool) app.BaseApp {
	store := app.NewStoreApp(Name, kv, QueryRouter(), context.Background()).
		WithInit(Initializer())
	return app.NewBaseApp(store, TxDecoder, Stack(), debug)
}

// CommitKVStore returns an initialized KVStore that persists
// the data to the named path. An empty path keeps the data in memory.
func CommitKVStore(dbPath string) (weave.CommitKVStore, error) {
	if dbPath == "" {
		return iavl.NewMemCommitStore(), nil
	}

	path, err := filepath.Abs(dbPath)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "database path %q", dbPath)
	}
	// tendermint style paths end with .db, the suffix is added back by leveldb
	path = strings.TrimSuffix(path, filepath.Ext(path))
	return iavl.NewCommitStore(filepath.Dir(path), filepath.Base(path)), nil
}
