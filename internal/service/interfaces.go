package service

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/auth_service_mock.go -package=mock

// AuthService registers users, authenticates them and manages their session
// tokens.
type AuthService interface {
	// CheckIdentifier reports whether the identifier is registered.
	CheckIdentifier(ctx context.Context, identifier string) (bool, error)

	// Register creates a user from credentials and returns it.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login authenticates credentials and returns the user with a fresh
	// session token.
	Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}
