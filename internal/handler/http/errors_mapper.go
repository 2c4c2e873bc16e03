package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/freelance-hub/internal/service"
	"github.com/MKhiriev/freelance-hub/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrUsernameTaken:   http.StatusConflict,
	store.ErrEmailTaken:      http.StatusConflict,
	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrClientNotFound:  http.StatusNotFound,
	store.ErrProjectNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError translates a service or store error into an HTTP response.
// Client errors (4xx) carry the sentinel's message; everything else is
// reported as a bare 500 so internals do not leak into responses.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	if status >= http.StatusInternalServerError {
		http.Error(w, http.StatusText(status), status)
		return
	}

	for target, targetStatus := range errorStatusMap {
		if targetStatus == status && errors.Is(err, target) {
			http.Error(w, target.Error(), status)
			return
		}
	}

	http.Error(w, http.StatusText(status), status)
}
