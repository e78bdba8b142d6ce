package http

import (
	"net/http"
)

func (h *Handler) getAppInfo(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, h.services.AppInfoService.GetAppInfo(r.Context()), http.StatusOK)
}
