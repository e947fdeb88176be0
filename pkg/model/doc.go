// Package model defines the database models for SecurePass.
//
// This package contains GORM models that map to the SecurePass PostgreSQL
// schema. Every vault record kind shares the Base columns (id, owner_id,
// tags, custom_fields, timestamps) and adds its own fields.
//
// # Core Models
//
//   - VaultUser: authenticated identities owning vault records
//   - APIKey: credential keys (model name + secret value)
//   - Password: login passwords (app, username, secret value)
//   - Note: free-text secure notes
//
// # Database Schema
//
// The database uses PostgreSQL with the following key tables:
//
//   - vault_users: owner identities and password hashes
//   - api_keys, passwords, notes: one per-owner collection per record kind
//
// Tags are stored as text[], custom fields as an ordered jsonb array.
package model
