package config

import "time"

const (
	defaultTokenIssuer     = "go-identity"
	defaultTokenDuration   = 7 * 24 * time.Hour
	defaultPasswordCost    = 10
	defaultLogLevel        = "info"
	defaultConnectTimeout  = 5 * time.Second
	defaultHTTPAddress     = "localhost:3000"
	defaultRequestTimeout  = 10 * time.Second
	defaultShutdownTimeout = 10 * time.Second
)

// defaultConfig is merged last, so it only fills fields no other source set.
// There is deliberately no default for the signing key or the DSN.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: defaultPasswordCost,
			LogLevel:         defaultLogLevel,
		},
		Storage: Storage{
			DB: DB{
				ConnectTimeout: defaultConnectTimeout,
			},
		},
		Server: Server{
			HTTPAddress:     defaultHTTPAddress,
			RequestTimeout:  defaultRequestTimeout,
			ShutdownTimeout: defaultShutdownTimeout,
			AllowedOrigins:  []string{"*"},
		},
	}
}
