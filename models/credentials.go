// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Credentials is the request body accepted by the register and login routes.
type Credentials struct {
	// Identifier is an email address or a local-format phone number.
	Identifier string `json:"identifier"`

	// Password is the plaintext password. It is only held in memory for the
	// duration of a request and is never stored or logged.
	Password string `json:"password"`
}
