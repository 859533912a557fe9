// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldIdentifier checks the identifier against the email-or-phone grammar.
	FieldIdentifier = "identifier"

	// FieldPasswordRequired checks that a password was supplied at all.
	// Used by login, where any non-empty password is compared.
	FieldPasswordRequired = "password required"

	// FieldPassword checks that the password has at least MinPasswordLength
	// characters. Used by registration and password changes.
	FieldPassword = "password"
)

// MinPasswordLength is the shortest password accepted on registration.
const MinPasswordLength = 6

// UserValidator implements [Validator] for [models.Credentials] and
// [models.User]. Both value and pointer forms are accepted.
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator
// and returns it as the Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches on the dynamic type of obj.
//
// For credentials the default field set is FieldIdentifier and FieldPassword;
// for users only FieldIdentifier applies, since a stored user carries a hash
// rather than a password. Fields are checked in the order given and the first
// failure is returned.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateCredentials(_ context.Context, credentials models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if !IsValidIdentifier(credentials.Identifier) {
				return ErrInvalidIdentifier
			}
		case FieldPasswordRequired:
			if credentials.Password == "" {
				return ErrPasswordRequired
			}
		case FieldPassword:
			// length is counted in characters, not bytes
			if len([]rune(credentials.Password)) < MinPasswordLength {
				return ErrPasswordTooShort
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if !IsValidIdentifier(user.Identifier) {
				return ErrInvalidIdentifier
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
