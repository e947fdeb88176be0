// Package config manages SecurePass configuration from a YAML file and
// environment variables.
//
// Environment variables take precedence over file values, and each
// attribute remembers its source (default, file or environment). Watch
// keeps the global configuration in sync with the file.
package config
