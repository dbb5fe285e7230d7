/*
Package orm stores models in prefixed ranges of a weave.KVStore.

Every bucket holds a single model type under "<name>:<key>". Secondary
indexes keep references from a computed value back to the primary keys,
under "_i.<bucket>_<index>:<value>", so that models can be listed by
something other than their primary key. Buckets and indexes can both be
exposed to ABCI queries through a weave.QueryRouter.
*/
package orm
