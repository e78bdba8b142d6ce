// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
)

// notFound is registered both as the router's NotFound and MethodNotAllowed
// handler: a known path under an unsupported method is reported exactly like
// an unknown path.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeResponse(w, r, errorResponse(http.StatusNotFound,
		fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)), http.StatusNotFound)
}
