/*
Package deposit implements the lease security deposit registry.

A deposit is created by the tenant of a lease and is identified by the lease
id. Creating it moves the amount from the tenant account into the custody
account owned by this extension. From there the deposit can be

	released to the landlord, by the tenant
	returned to the tenant, by the landlord
	disputed, by either of them

Released and Disputed are final. A disputed deposit keeps the funds in
custody.

Balances are kept by the ledger extension.
*/
package deposit
