// Package audit emits RFC 5424 syslog-formatted audit events for vault
// record operations, secret reveals, and authentication attempts. Events
// are written to stdout and optionally persisted to a database sink when
// AUDIT_DATABASE_URL is configured.
package audit
