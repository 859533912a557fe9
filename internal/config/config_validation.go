package config

import (
	"errors"
	"fmt"
)

// validate reports every missing or invalid setting at once.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.Storage.DB.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: database DSN is not set", ErrInvalidStorageConfigs))
	}

	if cfg.App.TokenSignKey == "" {
		errs = append(errs, fmt.Errorf("%w: token sign key is not set", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenIssuer == "" {
		errs = append(errs, fmt.Errorf("%w: token issuer is not set", ErrInvalidAppConfigs))
	}
	if cfg.App.TokenDuration <= 0 {
		errs = append(errs, fmt.Errorf("%w: token duration must be positive", ErrInvalidAppConfigs))
	}
	if cfg.App.PasswordHashCost < 0 {
		errs = append(errs, fmt.Errorf("%w: password hash cost must not be negative", ErrInvalidAppConfigs))
	}

	if cfg.Server.HTTPAddress == "" {
		errs = append(errs, fmt.Errorf("%w: http address is not set", ErrInvalidServerConfigs))
	}
	if cfg.Server.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("%w: request timeout must not be negative", ErrInvalidServerConfigs))
	}

	return errors.Join(errs...)
}
