// Package db provides the PostgreSQL connection used by the record store
// and the identity provider.
package db
