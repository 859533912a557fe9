// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the input rules of the identity service: the
// email-or-phone identifier grammar and the password requirements.
//
// Classify is the single definition of the identifier grammar. The service
// layer validates requests through a [Validator], and the store validates
// records before writing them, both ending up in Classify.
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the named
// fields. Implementations return the first rule that fails.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
