package models

import (
	"time"

	"github.com/google/uuid"
)

// Op is the kind of local mutation waiting to be pushed.
type Op string

const (
	OpUpsert Op = "upsert"
	OpDelete Op = "delete"
)

// PendingChange is a queued local mutation. At most one exists per ID.
type PendingChange struct {
	ID         uuid.UUID `json:"id"`
	Op         Op        `json:"op"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// RemoteSnapshot is the whole remote collection together with its version
// counter. Version doubles as the resumption marker of the next push.
type RemoteSnapshot struct {
	Records []Record `json:"notes"`
	Version int64    `json:"version"`
}

// MergePlan is the set of local mutations needed to reconcile the local
// store with a [RemoteSnapshot].
type MergePlan struct {
	// Create holds remote records unknown locally.
	Create []Record
	// Update holds local records overlaid with a strictly newer remote copy.
	Update []Record
	// Delete holds local IDs absent remotely and not waiting to be pushed.
	Delete []uuid.UUID
	// Skipped counts remote records ignored because a local delete of the
	// same ID has not reached the server yet.
	Skipped int
}

// Empty reports whether applying the plan would change nothing.
func (p MergePlan) Empty() bool {
	return len(p.Create) == 0 && len(p.Update) == 0 && len(p.Delete) == 0
}

// SyncEventKind tells subscribers what changed.
type SyncEventKind string

const (
	// EventStatusChanged is emitted on every pairing state transition.
	EventStatusChanged SyncEventKind = "status"
	// EventRecordsMerged is emitted after a non-empty merge was applied.
	EventRecordsMerged SyncEventKind = "merged"
)

// SyncEvent is published to subscribers of the sync engine.
type SyncEvent struct {
	Kind  SyncEventKind
	State PairingState
	Plan  MergePlan
}
