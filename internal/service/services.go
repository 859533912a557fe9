package service

import (
	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
)

type Services struct {
	AuthService AuthService
}

// NewServices builds the service layer over storages. Input validation is
// applied as a wrapper around the auth service.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) *Services {
	authService := NewAuthService(storages.UserStorage, hasher, cfg, logger)

	return &Services{
		AuthService: NewAuthValidationService().Wrap(authService),
	}
}
