package http

import (
	"net/http"

	"github.com/MKhiriev/go-event-keeper/internal/logger"
)

func (h *Handler) plainSignUp(w http.ResponseWriter, r *http.Request) {
	creds, err := parseCredentials(r, h.plainCredentialsValidator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.AuthService.SignUp(r.Context(), creds); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", creds.Name).Msg("user signed up")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) plainSignIn(w http.ResponseWriter, r *http.Request) {
	creds, err := parseCredentials(r, h.plainCredentialsValidator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	message, err := h.services.AuthService.SignIn(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, message, http.StatusOK)
}

func (h *Handler) tokenSignUp(w http.ResponseWriter, r *http.Request) {
	creds, err := parseCredentials(r, h.tokenCredentialsValidator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.TokenAuthService.SignUp(r.Context(), creds); err != nil {
		writeError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Str("username", creds.Name).Msg("token user signed up")
	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) tokenSignIn(w http.ResponseWriter, r *http.Request) {
	creds, err := parseCredentials(r, h.tokenCredentialsValidator)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.TokenAuthService.SignIn(r.Context(), creds)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeResponse(w, r, token, http.StatusOK)
}
