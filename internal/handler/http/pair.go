// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// registerCode handles POST /pair. The body carries the device identity
// because the device has no session yet.
func (h *Handler) registerCode(w http.ResponseWriter, r *http.Request) {
	var req models.PairRequest
	if err := utils.ReadJSON(r, &req, maxRequestBodyBytes); err != nil {
		writeError(w, r, "*Handler.registerCode", fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	if err := h.services.SyncHubService.RegisterCode(r.Context(), req); err != nil {
		writeError(w, r, "*Handler.registerCode", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) pairStatus(w http.ResponseWriter, r *http.Request) {
	device, ok := h.deviceFromRequest(w, r)
	if !ok {
		return
	}

	_, _ = utils.WriteJSON(w, h.services.SyncHubService.PairStatus(r.Context(), device), http.StatusOK)
}

// claimCode handles POST /pair/claim. A linked caller adds the device to its
// own account, an anonymous caller starts a new account.
func (h *Handler) claimCode(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.ClaimRequest
	if err := utils.ReadJSON(r, &req, maxRequestBodyBytes); err != nil {
		writeError(w, r, "*Handler.claimCode", fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	var claimer *models.HubDevice
	if device, ok := utils.GetDeviceFromContext(ctx); ok {
		claimer = &device
	}

	if err := h.services.SyncHubService.ClaimCode(ctx, claimer, req.Code); err != nil {
		writeError(w, r, "*Handler.claimCode", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
