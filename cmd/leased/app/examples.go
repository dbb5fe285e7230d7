package app

import (
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/commands"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/crypto"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/deposit"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/ledger"
	"github.com/anitadaniel385/Blockchain-Based-Commercial-Lease-Escrow/x/sigs"
)

// Examples generates some example structs to dump out with testgen
func Examples() []commands.Example {
	tenantKey := crypto.PrivKeyEd25519FromSeed(make([]byte, 32))
	tenant := tenantKey.PublicKey().Address()
	landlord := crypto.GenPrivKeyEd25519().PublicKey().Address()

	account := &ledger.Account{
		Metadata: &weave.Metadata{Schema: 1},
		Balance:  25000,
	}
	create := &deposit.CreateMsg{
		Metadata: &weave.Metadata{Schema: 1},
		LeaseID:  "lease-2019-0042",
		Landlord: landlord,
		Amount:   1500,
	}
	held := &deposit.Deposit{
		Metadata:    &weave.Metadata{Schema: 1},
		LeaseID:     create.LeaseID,
		Tenant:      tenant,
		Landlord:    landlord,
		Amount:      create.Amount,
		Status:      deposit.StatusHeld,
		DepositDate: 42,
	}
	release := &deposit.ReleaseMsg{
		Metadata: &weave.Metadata{Schema: 1},
		LeaseID:  create.LeaseID,
	}

	unsigned := &Tx{CreateDepositMsg: create}
	tx := *unsigned
	sig, err := sigs.SignTx(tenantKey, &tx, "lease-chain-1", 0)
	if err != nil {
		panic(err)
	}
	tx.Signatures = []*sigs.StdSignature{sig}

	return []commands.Example{
		{Filename: "priv_key", Obj: tenantKey},
		{Filename: "pub_key", Obj: tenantKey.PublicKey()},
		{Filename: "account", Obj: account},
		{Filename: "deposit", Obj: held},
		{Filename: "create_deposit_msg", Obj: create},
		{Filename: "release_deposit_msg", Obj: release},
		{Filename: "unsigned_tx", Obj: unsigned},
		{Filename: "signed_tx", Obj: &tx},
	}
}
