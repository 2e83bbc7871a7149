package http

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"

	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/utils"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// writeError logs err under funcName and answers with the status mapped from
// it. Internal errors are not echoed to the client.
func writeError(w http.ResponseWriter, r *http.Request, funcName string, err error) {
	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(status)
	}

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteJSONError(r.Context(), w, message, status)
}

func writeJSON(w http.ResponseWriter, r *http.Request, funcName string, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg("error writing response")
	}
}

// writeAttachment streams content as a file download named filename.
func writeAttachment(w http.ResponseWriter, r *http.Request, funcName, filename string, content io.Reader) {
	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("File-Name", filename)
	w.WriteHeader(http.StatusOK)

	if _, err := io.Copy(w, content); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Str("file", filename).Msg("error streaming file")
	}
}
