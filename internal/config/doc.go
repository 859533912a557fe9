// Package config loads, merges and validates the server configuration.
//
// Sources, from highest to lowest priority (the first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file (path from CONFIG, -c or -config)
//  4. Built-in defaults
//
// The token signing key and the database DSN have no defaults: a server
// started without them fails validation.
package config
