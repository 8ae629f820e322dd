package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

func (h *Handler) getNotes(w http.ResponseWriter, r *http.Request) {
	device, ok := h.deviceFromRequest(w, r)
	if !ok {
		return
	}

	snapshot, err := h.services.SyncHubService.GetCollection(r.Context(), device)
	if err != nil {
		writeError(w, r, "*Handler.getNotes", err)
		return
	}

	_, _ = utils.WriteJSON(w, snapshot, http.StatusOK)
}

func (h *Handler) replaceNotes(w http.ResponseWriter, r *http.Request) {
	device, ok := h.deviceFromRequest(w, r)
	if !ok {
		return
	}

	var req models.PushAllRequest
	if err := utils.ReadJSON(r, &req, maxRequestBodyBytes); err != nil {
		writeError(w, r, "*Handler.replaceNotes", fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	version, err := h.services.SyncHubService.ReplaceCollection(r.Context(), device, req)
	if err != nil {
		writeError(w, r, "*Handler.replaceNotes", err)
		return
	}

	logger.FromRequest(r).Info().
		Str("func", "*Handler.replaceNotes").
		Int("records", len(req.Records)).
		Int64("version", version).
		Msg("collection replaced")
	_, _ = utils.WriteJSON(w, models.VersionResponse{Version: version}, http.StatusOK)
}

func (h *Handler) putNote(w http.ResponseWriter, r *http.Request) {
	device, ok := h.deviceFromRequest(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.putNote", fmt.Errorf("%w: %w", ErrInvalidRecordID, err))
		return
	}

	var record models.Record
	if err = utils.ReadJSON(r, &record, maxRequestBodyBytes); err != nil {
		writeError(w, r, "*Handler.putNote", fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}
	switch record.ID {
	case uuid.Nil:
		record.ID = id
	case id:
	default:
		writeError(w, r, "*Handler.putNote", fmt.Errorf("%w: body has %s", ErrInvalidRecordID, record.ID))
		return
	}

	version, err := h.services.SyncHubService.PutRecord(r.Context(), device, record)
	if err != nil {
		writeError(w, r, "*Handler.putNote", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.VersionResponse{Version: version}, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	device, ok := h.deviceFromRequest(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.deleteNote", fmt.Errorf("%w: %w", ErrInvalidRecordID, err))
		return
	}

	version, err := h.services.SyncHubService.DeleteRecord(r.Context(), device, id)
	if err != nil {
		writeError(w, r, "*Handler.deleteNote", err)
		return
	}

	_, _ = utils.WriteJSON(w, models.VersionResponse{Version: version}, http.StatusOK)
}

// deviceFromRequest returns the device stored by auth. It answers 401 itself
// when the route was mounted without auth.
func (h *Handler) deviceFromRequest(w http.ResponseWriter, r *http.Request) (models.HubDevice, bool) {
	device, ok := utils.GetDeviceFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Str("func", "*Handler.deviceFromRequest").Msg("no device in context")
		utils.WriteError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	}
	return device, ok
}
