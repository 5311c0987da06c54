package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/go-braintacle/internal/logger"
)

// getServerVersion answers with the plain version string so that shell
// scripts can compare it without a JSON parser.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	if _, err := io.WriteString(w, version); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "getServerVersion").Msg("error writing version")
	}
}
