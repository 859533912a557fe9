// Package http implements the HTTP transport layer of the identity service.
//
// It exposes route wiring, request handlers, and middleware used by the JSON
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, CORS and request timeouts are handled in this package before
// requests are delegated to the service layer.
package http
