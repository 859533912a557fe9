// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration of the identity server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token and password hashing parameters.
	App App `envPrefix:"APP_"`

	// Storage holds the database connection settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds HTTP listener settings.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path of a JSON config file.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level security settings.
type App struct {
	// TokenSignKey is the HMAC secret used to sign session tokens. Required.
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens.
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long an issued token stays valid.
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// PasswordHashCost is the bcrypt cost factor.
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is the minimum level of emitted log entries.
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the database connection settings.
type DB struct {
	// DSN selects the backend by scheme: postgres:// or postgresql:// for
	// PostgreSQL, sqlite:// or file: for SQLite, memory:// for the in-memory
	// store. Required.
	DSN string `env:"DATABASE_URI"`

	// ConnectTimeout bounds the initial connection check and migrations.
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Server holds HTTP listener settings.
type Server struct {
	// HTTPAddress is the host:port the HTTP server listens on.
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request, store calls
	// included.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`

	// AllowedOrigins lists the CORS origins, comma separated in env.
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// GetStructuredConfig assembles the server configuration from the
// environment, command-line flags, an optional JSON file and defaults, and
// validates the result.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}

// Redacted returns a copy of the config that is safe to log: the signing key
// is masked and the DSN password removed.
func (cfg StructuredConfig) Redacted() StructuredConfig {
	redacted := cfg
	if redacted.App.TokenSignKey != "" {
		redacted.App.TokenSignKey = "***"
	}
	if u, err := url.Parse(redacted.Storage.DB.DSN); err == nil && u.User != nil {
		redacted.Storage.DB.DSN = u.Redacted()
	}
	return redacted
}
