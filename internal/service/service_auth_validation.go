package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-identity/internal/validators"
	"github.com/MKhiriev/go-identity/models"
)

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}

// AuthValidationService checks identifier grammar and password rules before
// delegating to the wrapped AuthService. Malformed input never reaches the
// store.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *AuthValidationService) CheckIdentifier(ctx context.Context, identifier string) (bool, error) {
	if err := v.validator.Validate(ctx, models.User{Identifier: identifier}, validators.FieldIdentifier); err != nil {
		return false, validationError(err)
	}

	return v.inner.CheckIdentifier(ctx, identifier)
}

// Register requires a valid identifier and a password of at least
// validators.MinPasswordLength characters.
func (v *AuthValidationService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if err := v.validator.Validate(ctx, credentials, validators.FieldIdentifier, validators.FieldPassword); err != nil {
		return models.User{}, validationError(err)
	}

	return v.inner.Register(ctx, credentials)
}

// Login requires a valid identifier and a non-empty password. Length rules
// are not applied so that passwords set under other rules can still log in.
func (v *AuthValidationService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	if err := v.validator.Validate(ctx, credentials, validators.FieldIdentifier, validators.FieldPasswordRequired); err != nil {
		return models.User{}, models.Token{}, validationError(err)
	}

	return v.inner.Login(ctx, credentials)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if tokenString == "" {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(wrapped AuthService) AuthService {
	v.inner = wrapped
	return v
}

// validationError converts a validators error into the service error shown
// to clients.
func validationError(err error) error {
	switch {
	case errors.Is(err, validators.ErrInvalidIdentifier):
		return ErrInvalidIdentifier
	case errors.Is(err, validators.ErrPasswordTooShort):
		return ErrPasswordTooShort
	case errors.Is(err, validators.ErrPasswordRequired):
		return ErrPasswordRequired
	default:
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
}
