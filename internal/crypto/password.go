// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto provides the password hashing primitive of the identity
// service.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordHashCost is the bcrypt cost used when none is configured.
const DefaultPasswordHashCost = 10

var (
	// ErrPasswordMismatch is returned by Compare when the password does not
	// match the hash.
	ErrPasswordMismatch = errors.New("password does not match hash")

	// ErrEmptyHash is returned by Compare when there is no hash to compare
	// against.
	ErrEmptyHash = errors.New("empty password hash")

	// ErrPasswordTooLong is returned by Hash for passwords longer than the
	// 72 bytes bcrypt can take into account.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

// bcryptHasher is the [PasswordHasher] backed by bcrypt.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a bcrypt-backed [PasswordHasher]. A zero cost means
// DefaultPasswordHashCost; other values are clamped to bcrypt's valid range.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost == 0 {
		cost = DefaultPasswordHashCost
	}
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash implements [PasswordHasher]. bcrypt generates the salt itself and
// stores it in the returned string.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// Compare implements [PasswordHasher].
func (h *bcryptHasher) Compare(hash, password string) error {
	if hash == "" {
		return ErrEmptyHash
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password hash: %w", err)
	}
}

// Cost reports the bcrypt cost encoded in hash.
func Cost(hash string) (int, error) {
	return bcrypt.Cost([]byte(hash))
}
