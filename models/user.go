// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the only persisted entity of the identity service.
// Sensitive fields must never leave the server.
type User struct {
	// UserID is the opaque unique identifier assigned on creation.
	// It never changes after the record is stored.
	UserID string `json:"id"`

	// Identifier is the login name of the user: an email address or a
	// local-format phone number. Unique across all users.
	Identifier string `json:"identifier"`

	// PasswordHash is the bcrypt output for the user's password,
	// with the salt embedded. Never the plaintext and never serialized.
	PasswordHash string `json:"-"`

	// CreatedAt is the time the record was first stored.
	CreatedAt time.Time `json:"-"`

	// UpdatedAt is the time of the last password change.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasPassword reports whether a password hash is set on the record.
func (u User) HasPassword() bool {
	return u.PasswordHash != ""
}
