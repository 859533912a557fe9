package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/models"
)

// userRepository is the SQL implementation of [UserRepository].
// It works against the "users" table of either PostgreSQL or SQLite.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Str("dialect", string(db.dialect)).Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

func (r *userRepository) Exists(ctx context.Context, identifier string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildExistsQuery(r.db.builder(), identifier)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*userRepository.Exists").Msg("error counting users")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// FindUserByIdentifier retrieves the user record whose identifier matches.
//
// Error handling:
//   - no rows → [ErrUserNotFound].
//   - any other driver-level error → wrapped [ErrScanningRow].
func (r *userRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIdentifierQuery(r.db.builder(), identifier)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	foundUser, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByIdentifier").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return foundUser, nil
}

// CreateUser persists a new user record. The caller assigns the id and
// timestamps; the stored record is returned as given.
//
// Error handling:
//   - unique violation on identifier → [ErrIdentifierAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateUserQuery(r.db.builder(), user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrIdentifierAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return user, nil
}

func (r *userRepository) UpdatePasswordHash(ctx context.Context, identifier, passwordHash string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdatePasswordHashQuery(r.db.builder(), identifier, passwordHash, time.Now().UTC())
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updatedUser, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdatePasswordHash").Msg("error updating password hash")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updatedUser, nil
}

func scanUser(row *sql.Row) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Identifier, &user.PasswordHash, &user.CreatedAt, &user.UpdatedAt)
	return user, err
}
