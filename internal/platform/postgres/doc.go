// Package postgres provides PostgreSQL implementations of the store
// interfaces. Each store accepts a store.DBTX, so the same implementation
// works against a plain connection pool or inside a transaction obtained
// from store.RunInTransaction.
package postgres
