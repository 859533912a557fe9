package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/service"
	"github.com/MKhiriev/go-identity/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation:     http.StatusBadRequest,
	service.ErrConflict:       http.StatusConflict,
	service.ErrNotFound:       http.StatusNotFound,
	service.ErrAuthentication: http.StatusUnauthorized,
	service.ErrStorage:        http.StatusInternalServerError,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError renders err as {"message": ...} with the mapped status code.
//
// Client errors show the message of the service error. Internal errors show
// fallback and keep the cause in the log only.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := fallback
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
		message = publicMessage(err)
	}
	if message == "" {
		message = http.StatusText(status)
	}

	h.writeJSON(w, r, models.ErrorResponse{Message: message}, status)
}

func publicMessage(err error) string {
	var serviceErr *service.Error
	if errors.As(err, &serviceErr) {
		return serviceErr.Message
	}
	return err.Error()
}
