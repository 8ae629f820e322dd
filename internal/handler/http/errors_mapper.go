package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidPairingCode:  http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrSecretMismatch:      http.StatusForbidden,
	service.ErrDeviceNotLinked:     http.StatusForbidden,
	service.ErrCodeAlreadyTaken:    http.StatusConflict,

	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,
	ErrDeviceIDMismatch:           http.StatusUnauthorized,
	ErrInvalidRequestBody:         http.StatusBadRequest,
	ErrInvalidRecordID:            http.StatusBadRequest,

	store.ErrCodeNotFound:   http.StatusNotFound,
	store.ErrRecordNotFound: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Server faults are
// logged as errors and their details are not sent to the client.
func writeError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", fn).Msg("request failed")
		utils.WriteError(w, http.StatusText(status), status)
		return
	}

	log.Warn().Err(err).Str("func", fn).Int("status", status).Msg("request rejected")
	utils.WriteError(w, err.Error(), status)
}
