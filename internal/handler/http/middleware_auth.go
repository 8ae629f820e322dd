// Package http implements the HTTP transport layer of the reference sync
// server. It provides middleware, route handlers, and request/response
// utilities for the REST API. Authentication, logging, tracing, rate
// limiting, and compression are handled at this layer before requests are
// forwarded to the service layer.
package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// deviceIDHeader is sent by clients next to the bearer credential.
const deviceIDHeader = "X-Device-ID"

// auth is an HTTP middleware that enforces device authentication.
//
// It extracts the bearer credential from the "Authorization" header,
// resolves it via [service.SyncHubService.Authenticate] and stores the
// device in the request context under [utils.DeviceCtxKey] before
// delegating to the next handler.
//
// Requests without a usable credential are rejected with HTTP 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		device, err := h.authenticate(r)
		if err != nil {
			h.rejectCredential(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), utils.DeviceCtxKey, device)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// optionalAuth behaves like auth when an "Authorization" header is present
// and passes anonymous requests through untouched.
func (h *Handler) optionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			next.ServeHTTP(w, r)
			return
		}
		h.auth(next).ServeHTTP(w, r)
	})
}

func (h *Handler) authenticate(r *http.Request) (models.HubDevice, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.HubDevice{}, ErrEmptyAuthorizationHeader
	}

	token, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		return models.HubDevice{}, err
	}

	device, err := h.services.SyncHubService.Authenticate(r.Context(), token)
	if err != nil {
		return models.HubDevice{}, err
	}

	if id := r.Header.Get(deviceIDHeader); id != "" && id != device.ID {
		return models.HubDevice{}, ErrDeviceIDMismatch
	}
	return device, nil
}

func (h *Handler) rejectCredential(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if statusFromError(err) >= http.StatusInternalServerError {
		log.Err(err).Str("func", "*Handler.auth").Msg("error authenticating device")
		utils.WriteError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Warn().Err(err).Str("func", "*Handler.auth").Msg("request is not authenticated")
	utils.WriteError(w, err.Error(), http.StatusUnauthorized)
}

// getTokenFromAuthHeader extracts the credential from a raw
// "Authorization" header value of the form:
//
//	Authorization: Bearer <device-id>:<secret>
//
// It returns [ErrInvalidAuthorizationHeader] for any other scheme and
// [ErrEmptyToken] when the credential is blank.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(authHeader, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
