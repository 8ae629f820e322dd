package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// CredentialProvider supplies the device identity presented to the remote
// store. [credential.Store] is the production implementation.
type CredentialProvider interface {
	// Identity returns the device identity, creating it on first use. It
	// never fails: persistence problems fall back to an in-memory identity.
	Identity(ctx context.Context) models.DeviceIdentity

	// BearerToken returns "id:secret" for the identity.
	BearerToken(ctx context.Context) string
}

// ChangeNotifier receives local mutations from the record service.
type ChangeNotifier interface {
	// OnLocalChange records that the record id was mutated locally. It must
	// not block and performs no I/O.
	OnLocalChange(id uuid.UUID, op models.Op)
}

// SyncEngine owns pairing, the change queue and every sync timer.
//
// Enable, Disable, Status and Subscribe form the surface used by the UI.
// PollPairing, Flush, Pull and PushAll run one cycle of the corresponding
// activity; the engine calls them from its timers and tests call them
// directly.
type SyncEngine interface {
	ChangeNotifier

	// Enable starts pairing, or resumes syncing when this installation was
	// linked before. It is a no-op unless sync is disabled.
	Enable(ctx context.Context) error

	// Disable stops every activity, revokes the session in the background
	// when linked, and clears the local sync state.
	Disable(ctx context.Context) error

	// Restore re-enables sync when the persisted enabled flag is set and
	// reports whether it did.
	Restore(ctx context.Context) (bool, error)

	// Status returns the current pairing state without blocking.
	Status() models.PairingState

	// StoredStatus returns the state recorded by the last process that ran
	// the engine. It never carries a pairing code.
	StoredStatus(ctx context.Context) (models.PairingState, error)

	// Subscribe returns a channel receiving status changes and merge results.
	// Slow subscribers miss events; the channel is closed by Close.
	Subscribe() <-chan models.SyncEvent

	// Close stops the engine, persists the outstanding queue and waits for
	// running activities to finish.
	Close(ctx context.Context) error

	PollPairing(ctx context.Context) error
	Flush(ctx context.Context) error
	Pull(ctx context.Context) error
	PushAll(ctx context.Context) error
}

// ClientRecordService is the editor's mutation path for notes and clipboard
// entries. Every write goes to the local store first and is then reported
// to a [ChangeNotifier].
type ClientRecordService interface {
	CreateNote(ctx context.Context, title, text string) (models.Record, error)
	UpdateNote(ctx context.Context, id uuid.UUID, title, text string) (models.Record, error)
	AddClipboardEntry(ctx context.Context, text string) (models.Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Get(ctx context.Context, id uuid.UUID) (models.Record, error)
	List(ctx context.Context) ([]models.Record, error)
}
