/*
Package x holds what the lease chain extensions share. Each extension,
x/ledger and x/deposit, lives in a subpackage and is wired into the
application in cmd/leased/app.

Handlers learn who signed a transaction through an Authenticator, so
that they do not depend on x/sigs directly.
*/
package x
