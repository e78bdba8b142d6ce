package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-event-keeper/internal/utils"
	"github.com/MKhiriev/go-event-keeper/internal/validators"
	"github.com/MKhiriev/go-event-keeper/models"
	"github.com/go-chi/chi/v5"
)

// Query parameters accepted by the search endpoints. The second one is a
// legacy alias.
const (
	searchTermParam       = "searchTerm"
	legacySearchTermParam = "search"
)

// parseCredentials decodes a {username, password} body and checks it with v.
func parseCredentials(r *http.Request, v validators.Validator) (models.Credentials, error) {
	var creds models.Credentials
	if err := utils.DecodeJSON(r, &creds); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	if err := v.Validate(r.Context(), creds); err != nil {
		return models.Credentials{}, err
	}

	return creds, nil
}

func parseCreateRecord(r *http.Request, v validators.Validator) (models.CreateRecordRequest, error) {
	var request models.CreateRecordRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		return models.CreateRecordRequest{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	if err := v.Validate(r.Context(), request); err != nil {
		return models.CreateRecordRequest{}, err
	}

	return request, nil
}

func parseUpdateRecord(r *http.Request, v validators.Validator) (models.UpdateRecordRequest, error) {
	var request models.UpdateRecordRequest
	if err := utils.DecodeJSON(r, &request); err != nil {
		return models.UpdateRecordRequest{}, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	if err := v.Validate(r.Context(), request); err != nil {
		return models.UpdateRecordRequest{}, err
	}

	return request, nil
}

// parseSearchTerm returns the search term of the query string. An absent
// term is returned as "" and rejected by the service.
func parseSearchTerm(r *http.Request) string {
	query := r.URL.Query()
	if query.Has(searchTermParam) {
		return query.Get(searchTermParam)
	}

	return query.Get(legacySearchTermParam)
}

func parseRecordID(r *http.Request) string {
	return chi.URLParam(r, "id")
}
