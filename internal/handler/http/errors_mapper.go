package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-file-keeper/internal/adapter"
	"github.com/MKhiriev/go-file-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-file-keeper/internal/service"
	"github.com/MKhiriev/go-file-keeper/internal/store"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusMap is ordered: pinning errors wrap both a specific sentinel and
// adapter.ErrExternalService, so the specific ones come first.
var errorStatusMap = []errorStatus{
	{ErrNoFileAttached, http.StatusConflict},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrPassphraseRequired, http.StatusBadRequest},
	{service.ErrInvalidBundle, http.StatusUnprocessableEntity},
	{service.ErrImportNotFound, http.StatusNotFound},

	{ratelimit.ErrRateLimited, http.StatusTooManyRequests},
	{adapter.ErrTooManyRequests, http.StatusTooManyRequests},
	{adapter.ErrUnauthorized, http.StatusBadGateway},
	{adapter.ErrNotFound, http.StatusNotFound},
	{adapter.ErrInvalidAddress, http.StatusBadRequest},
	{adapter.ErrTimeout, http.StatusGatewayTimeout},
	{adapter.ErrExternalService, http.StatusBadGateway},

	{store.ErrKeyNotFound, http.StatusNotFound},
	{store.ErrKeyNotSaved, http.StatusInternalServerError},
	{store.ErrSealingKey, http.StatusInternalServerError},
	{store.ErrOpeningKey, http.StatusInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, e := range errorStatusMap {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
