/*
Package ledger keeps the fungible balance of every party of the
escrow chain.

Each address owns a single Account holding a non negative balance.
Value only moves between accounts, so the sum of all balances is
constant for every operation except Issue, which is reserved for
the genesis initialization. Transfer validates both sides before it
writes anything, so a failed transfer leaves the store untouched.
*/
package ledger
