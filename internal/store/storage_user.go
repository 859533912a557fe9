// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/validators"
	"github.com/MKhiriev/go-identity/models"
)

// userStorage is the default implementation of [UserStorage].
//
// It sits on top of a [UserRepository] and owns the write path: identifier
// grammar is checked and the plaintext password hashed before anything
// reaches the repository. Reads are delegated unchanged.
type userStorage struct {
	// repository provides the raw record persistence.
	repository UserRepository

	// hasher turns plaintext passwords into salted hashes.
	hasher crypto.PasswordHasher

	// validator checks the identifier grammar on every write.
	validator validators.Validator

	// ids assigns ids to new records.
	ids IDGenerator

	logger *logger.Logger
}

// NewUserStorage constructs a [UserStorage] over repository.
//
// Parameters:
//   - repository: raw persistence (SQL or in-memory).
//   - hasher: password hasher used on every write.
//   - ids: generator of new user ids.
//   - logger: structured logger used for diagnostic output.
func NewUserStorage(repository UserRepository, hasher crypto.PasswordHasher, ids IDGenerator, logger *logger.Logger) UserStorage {
	logger.Debug().Msg("creating user storage")

	return &userStorage{
		repository: repository,
		hasher:     hasher,
		validator:  validators.NewUserValidator(),
		ids:        ids,
		logger:     logger,
	}
}

func (s *userStorage) Exists(ctx context.Context, identifier string) (bool, error) {
	return s.repository.Exists(ctx, identifier)
}

func (s *userStorage) FindByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	return s.repository.FindUserByIdentifier(ctx, identifier)
}

// Create registers identifier with password.
//
// Returns [validators.ErrInvalidIdentifier] for a malformed identifier and
// [ErrIdentifierAlreadyExists] if the identifier is taken.
func (s *userStorage) Create(ctx context.Context, identifier, password string) (models.User, error) {
	return s.Save(ctx, models.User{Identifier: identifier}, password)
}

// UpdatePassword replaces the password of an existing user.
//
// The stored hash is compared with password first: when they match, the
// record is returned as stored, without hashing or writing.
func (s *userStorage) UpdatePassword(ctx context.Context, identifier, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, models.User{Identifier: identifier}, validators.FieldIdentifier); err != nil {
		return models.User{}, err
	}

	existing, err := s.repository.FindUserByIdentifier(ctx, identifier)
	if err != nil {
		return models.User{}, err
	}

	if existing.HasPassword() && s.hasher.Compare(existing.PasswordHash, password) == nil {
		log.Debug().Str("func", "*userStorage.UpdatePassword").Msg("password unchanged, skipping hash")
		return existing, nil
	}

	return s.Save(ctx, existing, password)
}

// Save validates user's identifier, hashes password and writes the result.
// A user without an id is created with a fresh id and timestamps; otherwise
// only the stored hash is replaced.
func (s *userStorage) Save(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, user, validators.FieldIdentifier); err != nil {
		return models.User{}, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		log.Err(err).Str("func", "*userStorage.Save").Msg("error hashing password")
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}

	if user.UserID != "" {
		return s.repository.UpdatePasswordHash(ctx, user.Identifier, hash)
	}

	now := time.Now().UTC()
	user.UserID = s.ids.Generate()
	user.PasswordHash = hash
	user.CreatedAt = now
	user.UpdatedAt = now

	return s.repository.CreateUser(ctx, user)
}
