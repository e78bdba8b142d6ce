package http

import (
	"net/http"

	"github.com/MKhiriev/go-event-keeper/internal/service"
	"github.com/MKhiriev/go-event-keeper/internal/utils"
	"github.com/MKhiriev/go-event-keeper/models"
)

// callerFromRequest returns the Caller attached by the auth middleware.
func callerFromRequest(r *http.Request) (models.Caller, error) {
	caller, ok := utils.GetCallerFromContext(r.Context())
	if !ok {
		return models.Caller{}, service.ErrUnauthorized
	}
	return caller, nil
}

func (h *Handler) createOwnedEvent(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, err := parseCreateRecord(r, h.recordValidator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.OwnedEventService.Create(r.Context(), caller, request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, record, http.StatusCreated)
}

func (h *Handler) getOwnedEvent(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.OwnedEventService.Get(r.Context(), caller, parseRecordID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, record, http.StatusOK)
}

func (h *Handler) updateOwnedEvent(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	request, err := parseUpdateRecord(r, h.recordValidator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.OwnedEventService.Update(r.Context(), caller, parseRecordID(r), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, record, http.StatusOK)
}

func (h *Handler) deleteOwnedEvent(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.OwnedEventService.Delete(r.Context(), caller, parseRecordID(r)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) searchOwnedEvents(w http.ResponseWriter, r *http.Request) {
	caller, err := callerFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	records, err := h.services.OwnedEventService.Search(r.Context(), caller, parseSearchTerm(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, records, http.StatusOK)
}
