package tui

import "github.com/MKhiriev/go-note-sync/models"

// RenderStatus renders the tri-state sync indicator.
func RenderStatus(state models.PairingState) string {
	label := "sync: " + state.String()
	switch state.Phase {
	case models.PhaseLinked:
		return statusLinkedStyle.Render("● " + label)
	case models.PhasePairing:
		if state.Code == "" {
			label = "sync: linking"
		}
		return statusLinkingStyle.Render("◐ " + label)
	default:
		return statusOffStyle.Render("○ " + label)
	}
}
