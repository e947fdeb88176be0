// Package endpoints registers the SecurePass HTTP API handlers on a
// server.Server: authentication, per-kind record CRUD with masked
// listings, secret reveal, visibility toggling and the aggregation
// summary.
package endpoints
