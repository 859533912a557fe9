package http

import (
	"net/http"

	"github.com/MKhiriev/go-identity/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the bearer token,
// validates it via [service.AuthService.ParseToken], and on success stores
// the token claims in the request context with [utils.WithClaims] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer token ([ErrInvalidAuthorizationHeader]).
//   - The token is expired, signed with another key or algorithm, or
//     cannot be parsed ([service.ErrTokenIsExpiredOrInvalid]).
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader, "")
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, ErrInvalidAuthorizationHeader, "")
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			h.writeError(w, r, err, "")
			return
		}

		// downstream handlers read the claims without re-parsing the token
		ctx = utils.WithClaims(ctx, token.Claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
