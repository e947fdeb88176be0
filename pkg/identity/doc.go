// Package identity carries the authenticated owner identity through
// request contexts.
package identity
