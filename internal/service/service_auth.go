package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/internal/validators"
	"github.com/MKhiriev/go-identity/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserStorage for persistence and a PasswordHasher for
// password checks.
//
// authService assumes its inputs are well-formed; see
// [NewAuthValidationService] for the checks applied in front of it.
type authService struct {
	// userStorage is the credential store used to create and look up users.
	userStorage store.UserStorage

	// hasher compares login passwords with stored hashes.
	hasher crypto.PasswordHasher

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserStorage
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userStorage store.UserStorage, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userStorage:   userStorage,
		hasher:        hasher,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

func (a *authService) CheckIdentifier(ctx context.Context, identifier string) (bool, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userStorage.Exists(ctx, identifier)
	if err != nil {
		log.Err(err).Msg("identifier lookup failed")
		return false, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	return exists, nil
}

// Register creates a new user account.
//
// Returns the persisted user or:
//   - ErrEmailAlreadyRegistered / ErrPhoneAlreadyRegistered if the identifier
//     is taken, including when a concurrent registration wins the race.
//   - ErrStorage wrapping the cause if the store fails.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	exists, err := a.userStorage.Exists(ctx, credentials.Identifier)
	if err != nil {
		log.Err(err).Msg("identifier lookup failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if exists {
		log.Info().Str("identifier", credentials.Identifier).Msg("identifier already registered")
		return models.User{}, alreadyRegisteredError(credentials.Identifier)
	}

	registeredUser, err := a.userStorage.Create(ctx, credentials.Identifier, credentials.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrIdentifierAlreadyExists):
			log.Info().Str("identifier", credentials.Identifier).Msg("identifier registered concurrently")
			return models.User{}, alreadyRegisteredError(credentials.Identifier)
		case errors.Is(err, validators.ErrInvalidIdentifier):
			return models.User{}, ErrInvalidIdentifier
		case errors.Is(err, crypto.ErrPasswordTooLong):
			return models.User{}, ErrPasswordTooLong
		default:
			log.Err(err).Msg("user creation ended with error")
			return models.User{}, fmt.Errorf("%w: %w", ErrStorage, err)
		}
	}

	log.Info().Str("id", registeredUser.UserID).Msg("user registered")

	return registeredUser, nil
}

// Login authenticates an existing user and issues a session token.
//
// Returns the user record and token or:
//   - ErrUserNotFound if no user has the identifier.
//   - ErrWrongPassword if the record has no password hash or the password
//     does not match it.
//   - ErrStorage wrapping the cause if the store fails.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userStorage.FindByIdentifier(ctx, credentials.Identifier)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, models.Token{}, ErrUserNotFound
		}
		log.Err(err).Msg("user search by identifier failed")
		return models.User{}, models.Token{}, fmt.Errorf("%w: %w", ErrStorage, err)
	}

	if !foundUser.HasPassword() {
		log.Warn().Str("id", foundUser.UserID).Msg("user has no password hash")
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	if err = a.hasher.Compare(foundUser.PasswordHash, credentials.Password); err != nil {
		if !errors.Is(err, crypto.ErrPasswordMismatch) {
			log.Err(err).Str("id", foundUser.UserID).Msg("password hash comparison failed")
		}
		return models.User{}, models.Token{}, ErrWrongPassword
	}

	token, err := a.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Str("id", foundUser.UserID).Msg("creation of token failed")
		return models.User{}, models.Token{}, err
	}

	log.Debug().Str("id", foundUser.UserID).Msg("user successfully logged in")

	return foundUser, token, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// alreadyRegisteredError picks the conflict message by identifier kind.
func alreadyRegisteredError(identifier string) error {
	if validators.Classify(identifier) == validators.Phone {
		return ErrPhoneAlreadyRegistered
	}
	return ErrEmailAlreadyRegistered
}
