// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the claim set carried by session tokens.
//
// The "sub" claim holds the user's id; Identifier duplicates the login name
// so that clients can display it without another round trip.
type Claims struct {
	jwt.RegisteredClaims

	// Identifier is the email or phone number the user registered with.
	Identifier string `json:"identifier"`
}

// Token wraps a signed session token together with its decoded claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims are the decoded claims of the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS form (header.payload.signature).
	SignedString string `json:"-"`
}

// GetUserID returns the user id stored in the "sub" claim.
func (t *Token) GetUserID() (string, error) {
	if t.Claims.Subject == "" {
		return "", errors.New("empty subject in token")
	}

	return t.Claims.Subject, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
