// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "regexp"

// IdentifierKind classifies a login identifier.
type IdentifierKind int

const (
	// Invalid matches neither the email nor the phone grammar.
	Invalid IdentifierKind = iota
	// Email is a local@domain.tld shaped address. No DNS/MX checks are made.
	Email
	// Phone is a local mobile number: optional "+88", then "01", one digit
	// in 3-9 and eight more digits.
	Phone
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\+88)?01[3-9]\d{8}$`)
)

// Classify reports whether identifier is an email address, a phone number
// or neither. It is the only place the identifier grammar is defined; the
// service layer and the store write path both go through it.
func Classify(identifier string) IdentifierKind {
	switch {
	case emailPattern.MatchString(identifier):
		return Email
	case phonePattern.MatchString(identifier):
		return Phone
	default:
		return Invalid
	}
}

// IsValidIdentifier is shorthand for Classify(identifier) != Invalid.
func IsValidIdentifier(identifier string) bool {
	return Classify(identifier) != Invalid
}

func (k IdentifierKind) String() string {
	switch k {
	case Email:
		return "email"
	case Phone:
		return "phone"
	default:
		return "invalid"
	}
}
