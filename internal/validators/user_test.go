// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserValidator(t *testing.T) {
	v := NewUserValidator()
	require.NotNil(t, v)
}

func TestUserValidator_Credentials(t *testing.T) {
	ctx := context.Background()
	v := NewUserValidator()

	tests := []struct {
		name        string
		credentials models.Credentials
		fields      []string
		wantErr     error
	}{
		{
			name:        "valid email and long password",
			credentials: models.Credentials{Identifier: "x@y.com", Password: "longenough"},
		},
		{
			name:        "valid phone and six char password",
			credentials: models.Credentials{Identifier: "01712345678", Password: "abcdef"},
		},
		{
			name:        "invalid identifier is reported before password",
			credentials: models.Credentials{Identifier: "nope", Password: "x"},
			wantErr:     ErrInvalidIdentifier,
		},
		{
			name:        "five char password",
			credentials: models.Credentials{Identifier: "x@y.com", Password: "short"},
			wantErr:     ErrPasswordTooShort,
		},
		{
			name:        "multibyte password counted in characters",
			credentials: models.Credentials{Identifier: "x@y.com", Password: "пароль"},
		},
		{
			name:        "login accepts any non-empty password",
			credentials: models.Credentials{Identifier: "x@y.com", Password: "a"},
			fields:      []string{FieldIdentifier, FieldPasswordRequired},
		},
		{
			name:        "login requires password",
			credentials: models.Credentials{Identifier: "x@y.com"},
			fields:      []string{FieldIdentifier, FieldPasswordRequired},
			wantErr:     ErrPasswordRequired,
		},
		{
			name:        "identifier only",
			credentials: models.Credentials{Identifier: "+8801912345678"},
			fields:      []string{FieldIdentifier},
		},
		{
			name:        "unknown field",
			credentials: models.Credentials{Identifier: "x@y.com", Password: "abcdef"},
			fields:      []string{"nickname"},
			wantErr:     ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.credentials, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			c := tt.credentials
			assert.ErrorIs(t, v.Validate(ctx, &c, tt.fields...), tt.wantErr)
		})
	}
}

func TestUserValidator_User(t *testing.T) {
	ctx := context.Background()
	v := NewUserValidator()

	assert.NoError(t, v.Validate(ctx, models.User{Identifier: "a@b.com"}))
	assert.NoError(t, v.Validate(ctx, &models.User{Identifier: "01512345678"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Identifier: "a@b"}), ErrInvalidIdentifier)
	assert.ErrorIs(t, v.Validate(ctx, models.User{Identifier: "a@b.com"}, FieldPassword), ErrUnknownField)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	v := NewUserValidator()
	assert.ErrorIs(t, v.Validate(context.Background(), "a@b.com"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrUnsupportedType)
}
