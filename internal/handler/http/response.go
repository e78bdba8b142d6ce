package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-event-keeper/internal/logger"
	"github.com/MKhiriev/go-event-keeper/internal/utils"
	"github.com/MKhiriev/go-event-keeper/internal/validators"
	"github.com/MKhiriev/go-event-keeper/models"
)

// writeError renders err with the status from errorStatusMap. Validation
// failures are rendered as {"field","message"}.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Err(err).Str("field", validationErr.Field).Msg("request rejected by validation")
		if _, wErr := utils.WriteJSON(w, models.ValidationErrorResponse{
			Field:   validationErr.Field,
			Message: validationErr.Message,
		}, status); wErr != nil {
			log.Err(wErr).Msg("error writing response")
		}
		return
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, errorResponse(status, err.Error()), status); wErr != nil {
		log.Err(wErr).Msg("error writing response")
	}
}

func errorResponse(status int, message string) models.ErrorResponse {
	return models.ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	}
}

func writeResponse(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
