// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns the smallest config that passes validation.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenSignKey:  "secret",
			TokenIssuer:   "issuer",
			TokenDuration: time.Hour,
		},
		Storage: Storage{DB: DB{DSN: "memory://"}},
		Server:  Server{HTTPAddress: "localhost:3000"},
	}
}

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_EarlierSourcesWin(t *testing.T) {
	first := validConfig()
	first.App.TokenSignKey = "from-env"

	second := &StructuredConfig{
		App:    App{TokenSignKey: "from-flags", PasswordHashCost: 12},
		Server: Server{RequestTimeout: time.Second},
	}

	b := newConfigBuilder()
	b.configs = append(b.configs, first, second)

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.TokenSignKey)
	assert.Equal(t, 12, cfg.App.PasswordHashCost)
	assert.Equal(t, time.Second, cfg.Server.RequestTimeout)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:     App{TokenSignKey: "secret"},
		Storage: Storage{DB: DB{DSN: "memory://"}},
	})

	cfg, err := b.withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, "go-identity", cfg.App.TokenIssuer)
	assert.Equal(t, 7*24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.PasswordHashCost)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, 5*time.Second, cfg.Storage.DB.ConnectTimeout)
	assert.Equal(t, "localhost:3000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
}

func TestBuild_MissingSecretIsFatal(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		Storage: Storage{DB: DB{DSN: "memory://"}},
	})

	cfg, err := b.withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.NotErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_MissingDSNIsFatal(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App: App{TokenSignKey: "secret"},
	})

	cfg, err := b.withDefaults().build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestWithJSON_LoadsFileFromEarlierSource(t *testing.T) {
	path := writeTempFile(t, `{"app": {"token_sign_key": "json-secret"}, "storage": {"db": {"dsn": "memory://"}}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})

	cfg, err := b.withJSON().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "memory://", cfg.Storage.DB.DSN)
}

func TestWithJSON_MissingFileRecordsError(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestWithFlags_InvalidFlagRecordsError(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-a", "nonsense"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestGetStructuredConfig_FromEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_TOKEN_SIGN_KEY":      "env-secret",
		"STORAGE_DB_DATABASE_URI": "memory://",
	})

	cfg, err := newConfigBuilder().withEnv().withFlags(nil).withJSON().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "env-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "memory://", cfg.Storage.DB.DSN)
}

func TestRedacted(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.DB.DSN = "postgres://identity:hunter2@db:5432/identity"

	redacted := cfg.Redacted()

	assert.Equal(t, "***", redacted.App.TokenSignKey)
	assert.NotContains(t, redacted.Storage.DB.DSN, "hunter2")
	assert.Contains(t, redacted.Storage.DB.DSN, "db:5432/identity")

	// original is untouched
	assert.Equal(t, "secret", cfg.App.TokenSignKey)
	assert.Contains(t, cfg.Storage.DB.DSN, "hunter2")
}
