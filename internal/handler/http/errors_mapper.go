package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-event-keeper/internal/service"
	"github.com/MKhiriev/go-event-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrDuplicateName:           http.StatusConflict,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrUnauthorized:            http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrRecordNotFound:          http.StatusNotFound,
	service.ErrMissingSearchTerm:       http.StatusBadRequest,
	// storage faults keep the not-found status clients already handle
	service.ErrOperationFailed: http.StatusNotFound,

	validators.ErrValidation: http.StatusBadRequest,
	ErrInvalidBody:           http.StatusBadRequest,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
