// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		want       IdentifierKind
	}{
		{name: "simple email", identifier: "a@b.com", want: Email},
		{name: "email with subdomain", identifier: "john.doe@mail.example.org", want: Email},
		{name: "email upper case", identifier: "JOHN@EXAMPLE.COM", want: Email},
		{name: "email plus tag", identifier: "x+tag@y.io", want: Email},
		{name: "local phone", identifier: "01712345678", want: Phone},
		{name: "phone with country prefix", identifier: "+8801712345678", want: Phone},
		{name: "phone lowest operator digit", identifier: "01312345678", want: Phone},
		{name: "phone highest operator digit", identifier: "01912345678", want: Phone},

		{name: "empty", identifier: "", want: Invalid},
		{name: "plain word", identifier: "notanid", want: Invalid},
		{name: "email without tld", identifier: "a@b", want: Invalid},
		{name: "email without local part", identifier: "@b.com", want: Invalid},
		{name: "email with two at signs", identifier: "a@@b.com", want: Invalid},
		{name: "email with space", identifier: "a b@c.com", want: Invalid},
		{name: "email with trailing newline", identifier: "a@b.com\n", want: Invalid},
		{name: "phone operator digit 2", identifier: "01212345678", want: Invalid},
		{name: "phone too short", identifier: "0171234567", want: Invalid},
		{name: "phone too long", identifier: "017123456789", want: Invalid},
		{name: "phone wrong prefix", identifier: "+8701712345678", want: Invalid},
		{name: "phone with letters", identifier: "0171234567a", want: Invalid},
		{name: "phone prefix only", identifier: "+88", want: Invalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.identifier))
			assert.Equal(t, tt.want != Invalid, IsValidIdentifier(tt.identifier))
		})
	}
}

// TestClassify_MatchesReferenceGrammar checks Classify against the grammar
// written as plain regular expressions for a set of tricky inputs.
func TestClassify_MatchesReferenceGrammar(t *testing.T) {
	email := regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phone := regexp.MustCompile(`^(\+88)?01[3-9]\d{8}$`)

	inputs := []string{
		"a@b.c", "a@b.c.d", "a.b@c", "a@.c", "a@b.", "é@ü.de", "\ta@b.com",
		"8801712345678", "+88017123456789", "017-1234-5678", "01712345678 ",
		"a@b.com@c.com", "01812345678", "+8801312345678", "",
	}

	for _, in := range inputs {
		want := Invalid
		switch {
		case email.MatchString(in):
			want = Email
		case phone.MatchString(in):
			want = Phone
		}
		assert.Equalf(t, want, Classify(in), "input %q", in)
	}
}

func TestIdentifierKind_String(t *testing.T) {
	assert.Equal(t, "email", Email.String())
	assert.Equal(t, "phone", Phone.String())
	assert.Equal(t, "invalid", Invalid.String())
	assert.Equal(t, "invalid", IdentifierKind(42).String())
}
