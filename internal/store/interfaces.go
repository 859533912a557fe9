package store

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_storage_mock.go -package=mock

// UserRepository is the raw persistence of user records. It stores whatever
// it is given: hashing and identifier checks belong to [UserStorage].
type UserRepository interface {
	// Exists reports whether a record with the identifier is stored.
	Exists(ctx context.Context, identifier string) (bool, error)

	// FindUserByIdentifier returns the record with the identifier or
	// [ErrUserNotFound].
	FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error)

	// CreateUser inserts a new record. A second record with the same
	// identifier is rejected with [ErrIdentifierAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdatePasswordHash replaces the stored hash of the record with the
	// identifier and returns the updated record, or [ErrUserNotFound].
	UpdatePasswordHash(ctx context.Context, identifier, passwordHash string) (models.User, error)
}

// UserStorage is the credential store used by the service layer. Every
// password it persists goes through the configured hasher first.
type UserStorage interface {
	// Exists reports whether the identifier is registered.
	Exists(ctx context.Context, identifier string) (bool, error)

	// FindByIdentifier returns the stored record or [ErrUserNotFound].
	FindByIdentifier(ctx context.Context, identifier string) (models.User, error)

	// Create registers a new user with the plaintext password.
	Create(ctx context.Context, identifier, password string) (models.User, error)

	// UpdatePassword sets a new password for an existing user. If the new
	// password matches the stored one the record is returned unchanged.
	UpdatePassword(ctx context.Context, identifier, password string) (models.User, error)

	// Save is the single write path: it hashes password and creates the
	// record when user has no id yet, or updates its hash otherwise.
	Save(ctx context.Context, user models.User, password string) (models.User, error)
}

// IDGenerator produces ids for new user records.
type IDGenerator interface {
	Generate() string
}
