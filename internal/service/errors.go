package service

import (
	"errors"
)

// Error categories. Every error returned by [AuthService] matches exactly one
// of them with [errors.Is]; the HTTP layer maps categories to status codes.
var (
	ErrValidation     = errors.New("validation failed")
	ErrConflict       = errors.New("conflict")
	ErrNotFound       = errors.New("not found")
	ErrAuthentication = errors.New("authentication failed")
	ErrStorage        = errors.New("storage failure")
)

// Error is a domain error whose message is safe to show to clients.
// It unwraps to its category.
type Error struct {
	Category error
	Message  string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Category
}

func newError(category error, message string) *Error {
	return &Error{Category: category, Message: message}
}

var (
	ErrInvalidIdentifier = newError(ErrValidation, "Please provide a valid email or phone number.")
	ErrPasswordTooShort  = newError(ErrValidation, "Password must be at least 6 characters long.")
	ErrPasswordRequired  = newError(ErrValidation, "Password is required.")
	ErrPasswordTooLong   = newError(ErrValidation, "Password must be at most 72 bytes long.")

	ErrEmailAlreadyRegistered = newError(ErrConflict, "Email is already registered!")
	ErrPhoneAlreadyRegistered = newError(ErrConflict, "Phone number is already registered!")

	ErrUserNotFound = newError(ErrNotFound, "User not found! Please check your credentials.")

	ErrWrongPassword           = newError(ErrAuthentication, "Invalid password! Please try again.")
	ErrTokenIsExpiredOrInvalid = newError(ErrAuthentication, "Token is expired or invalid.")
)

// ErrTokenCreationFailed is returned when a session token cannot be signed.
var ErrTokenCreationFailed = errors.New("token creation failed")
