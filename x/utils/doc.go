/*
Package utils holds the decorators shared by every handler stack of the
lease chain.

Recovery turns a panic into an ErrPanic result. Logging writes one line
per transaction. Savepoint isolates a transaction in a cache that is
only written when the handler succeeds. ActionTagger labels delivered
transactions so that clients can subscribe to them.
*/
package utils
