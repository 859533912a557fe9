// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated is returned by NewServer when there is no HTTP
	// handler or address to serve.
	errNoServersAreCreated = errors.New("no servers are created")

	// errListen wraps a failure to bind the configured HTTP address. It is
	// returned by RunServer before any request is served.
	errListen = errors.New("HTTP server listen")
)
