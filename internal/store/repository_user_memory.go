package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/models"
)

// memoryUserRepository keeps user records in a map keyed by identifier.
// The mutex makes create-if-absent atomic, so of two concurrent creates for
// one identifier exactly one succeeds.
type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

// NewMemoryUserRepository constructs an empty in-memory [UserRepository].
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users: make(map[string]models.User),
	}
}

func (r *memoryUserRepository) Exists(ctx context.Context, identifier string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[identifier]
	return ok, nil
}

func (r *memoryUserRepository) FindUserByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[identifier]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return user, nil
}

func (r *memoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Identifier]; ok {
		return models.User{}, ErrIdentifierAlreadyExists
	}
	r.users[user.Identifier] = user

	return user, nil
}

func (r *memoryUserRepository) UpdatePasswordHash(ctx context.Context, identifier, passwordHash string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[identifier]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	user.PasswordHash = passwordHash
	user.UpdatedAt = time.Now().UTC()
	r.users[identifier] = user

	return user, nil
}
