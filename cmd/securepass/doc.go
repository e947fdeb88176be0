// Package main provides the securepass CLI: the vault server plus the
// operational commands around it.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/vault: record managers, stores, search/filter index,
//     pagination, visibility and aggregation
//   - pkg/auth: identity provider, password hashing and session tokens
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
// The server is run via the securepass CLI:
//
//	# Run database migrations
//	securepass db migrate
//
//	# Start the server
//	export SECUREPASS_SIGNING_KEY="some-long-random-string"
//	securepass server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - SECUREPASS_SIGNING_KEY: key used to sign session tokens
//   - SECUREPASS_LOG_LEVEL: log level (debug enables SQL logging)
//   - SECUREPASS_AUDIT_ENABLED: set to "false" to silence audit logging
//   - AUDIT_DATABASE_URL: optional database sink for audit events
//   - SECUREPASS_MIGRATIONS_PATH: migrations directory for non-embedded
//     builds (default: db/migrations)
//   - PORT: server port (default: 8000)
package main
