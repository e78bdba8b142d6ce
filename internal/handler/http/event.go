package http

import (
	"net/http"
)

func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	request, err := parseCreateRecord(r, h.recordValidator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.EventService.Create(r.Context(), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, record, http.StatusCreated)
}

func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	record, err := h.services.EventService.Get(r.Context(), parseRecordID(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, record, http.StatusOK)
}

func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	request, err := parseUpdateRecord(r, h.recordValidator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	record, err := h.services.EventService.Update(r.Context(), parseRecordID(r), request)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, record, http.StatusOK)
}

func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.services.EventService.Delete(r.Context(), parseRecordID(r)); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) searchEvents(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.EventService.Search(r.Context(), parseSearchTerm(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, records, http.StatusOK)
}
