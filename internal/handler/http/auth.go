package http

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/go-chi/chi/v5"
)

// Response messages of the auth routes.
const (
	messageSuccess            = "Success"
	messageRegistered         = "User registered successfully!"
	messageLoggedIn           = "Login successful!"
	messageInvalidJSON        = "Invalid JSON was passed"
	messageCheckFailed        = "An error occurred while checking the identifier."
	messageRegistrationFailed = "An error occurred during registration."
	messageLoginFailed        = "An error occurred during login."
)

// MessageServerIsOK is the body of the health check response.
var MessageServerIsOK = models.MessageResponse{Message: "server is ok"}

func (h *Handler) checkIdentifier(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identifier, err := identifierParam(r)
	if err != nil {
		h.writeError(w, r, service.ErrInvalidIdentifier, messageCheckFailed)
		return
	}

	exists, err := h.services.AuthService.CheckIdentifier(ctx, identifier)
	if err != nil {
		h.writeError(w, r, err, messageCheckFailed)
		return
	}

	h.writeJSON(w, r, models.CheckResponse{Message: messageSuccess, Exists: exists}, http.StatusOK)
}

// identifierParam returns the decoded {identifier} path segment.
//
// chi matches on URL.RawPath when it is set and on the already decoded
// URL.Path otherwise, so the segment is unescaped only in the first case.
// A literal "%" in an identifier therefore survives a single PathEscape.
func identifierParam(r *http.Request) (string, error) {
	identifier := chi.URLParam(r, "identifier")
	if r.URL.RawPath == "" {
		return identifier, nil
	}

	return url.PathUnescape(identifier)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeJSON(w, r, models.ErrorResponse{Message: messageInvalidJSON}, http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err, messageRegistrationFailed)
		return
	}

	h.writeJSON(w, r, models.RegisterResponse{
		Message:    messageRegistered,
		ID:         registeredUser.UserID,
		Identifier: registeredUser.Identifier,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := utils.ReadJSON(r, &credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeJSON(w, r, models.ErrorResponse{Message: messageInvalidJSON}, http.StatusBadRequest)
		return
	}

	foundUser, token, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		h.writeError(w, r, err, messageLoginFailed)
		return
	}

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	h.writeJSON(w, r, models.LoginResponse{
		Message:    messageLoggedIn,
		Token:      token.SignedString,
		ID:         foundUser.UserID,
		Identifier: foundUser.Identifier,
	}, http.StatusOK)
}

// me describes the user the bearer token was issued to.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrTokenIsExpiredOrInvalid, "")
		return
	}

	h.writeJSON(w, r, models.UserResponse{ID: claims.Subject, Identifier: claims.Identifier}, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
