package http

import "net/http"

// revokeSession handles DELETE /session: the device is unlinked and
// forgotten, its credential stops working immediately.
func (h *Handler) revokeSession(w http.ResponseWriter, r *http.Request) {
	device, ok := h.deviceFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.SyncHubService.RevokeSession(r.Context(), device); err != nil {
		writeError(w, r, "*Handler.revokeSession", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
