package tui

import "github.com/MKhiriev/go-note-sync/models"

// syncEventMsg carries an engine event into the bubbletea loop.
type syncEventMsg models.SyncEvent

// eventsClosedMsg means the engine was closed.
type eventsClosedMsg struct{}
