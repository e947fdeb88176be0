// Package server provides the HTTP server for the SecurePass API.
//
// This package implements the HTTP server that handles all vault REST API
// requests. It uses gorilla/mux for routing and provides middleware for
// session-token validation.
//
// # Server Setup
//
//	srv := server.NewServer(db, provider, issuer, cfg, host, port)
//	endpoints.RegisterAll(srv)
//	if err := srv.Start(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Components
//
// The Server struct holds:
//
//   - Provider: identity provider (sign-up, sign-in, password reset)
//   - Issuer: session token signing and verification
//   - TokenAuth: bearer-token validation middleware
//   - APIKeys / Passwords / Notes: the per-kind record stores
//   - DB: database connection
//
// Each authenticated owner gets one vault (three record managers with
// shared filter, pagination and visibility state) that lives until
// logout.
//
// # Endpoints
//
// API endpoints are registered via the endpoints subpackage:
//
//	endpoints.RegisterAll(srv)
//
// This registers:
//
//   - /authn/signup, /authn/login, /authn/reset, /authn/logout
//   - /records/{kind} - listing and creation
//   - /records/{kind}/{id} - replace and delete
//   - /records/{kind}/{id}/secret - copy the raw secret value
//   - /records/{kind}/{id}/visibility - toggle the per-record mask
//   - /summary - aggregated counts and tag/platform frequencies
package server
