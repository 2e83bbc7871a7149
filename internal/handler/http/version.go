package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	writeJSON(w, r, "*Handler.getServerVersion", version, http.StatusOK)
}
