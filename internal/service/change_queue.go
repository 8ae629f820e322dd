// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

// ChangeQueue records ids of locally mutated records until they are pushed.
//
// A queued id is waiting for the next flush; an in-flight id has been handed
// to a push that has not finished yet. Both count as pending for the merger.
// At most one op is queued per id and a queued delete is never replaced by an
// upsert.
type ChangeQueue struct {
	now func() time.Time

	mu       sync.Mutex
	queued   map[uuid.UUID]models.PendingChange
	inFlight map[uuid.UUID]inFlightChange
}

type inFlightChange struct {
	op   models.Op
	refs int
}

// NewChangeQueue returns an empty queue stamping changes with now.
func NewChangeQueue(now func() time.Time) *ChangeQueue {
	if now == nil {
		now = time.Now
	}
	return &ChangeQueue{
		now:      now,
		queued:   make(map[uuid.UUID]models.PendingChange),
		inFlight: make(map[uuid.UUID]inFlightChange),
	}
}

// EnqueueUpsert records a local create or update of id.
func (q *ChangeQueue) EnqueueUpsert(id uuid.UUID) {
	q.enqueue(id, models.OpUpsert)
}

// EnqueueDelete records a local delete of id.
func (q *ChangeQueue) EnqueueDelete(id uuid.UUID) {
	q.enqueue(id, models.OpDelete)
}

// Enqueue records op for id.
func (q *ChangeQueue) Enqueue(id uuid.UUID, op models.Op) {
	q.enqueue(id, op)
}

func (q *ChangeQueue) enqueue(id uuid.UUID, op models.Op) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.putLocked(models.PendingChange{ID: id, Op: op, EnqueuedAt: q.now()})
}

func (q *ChangeQueue) putLocked(change models.PendingChange) {
	if prev, ok := q.queued[change.ID]; ok && prev.Op == models.OpDelete {
		return
	}
	q.queued[change.ID] = change
}

// Drain empties the queue and marks the drained ids as in flight. Ids come
// back in enqueue order.
func (q *ChangeQueue) Drain() (upserts, deletes []uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	changes := make([]models.PendingChange, 0, len(q.queued))
	for _, c := range q.queued {
		changes = append(changes, c)
	}
	clear(q.queued)
	sortChanges(changes)

	for _, c := range changes {
		q.trackLocked(c.ID, c.Op)
		if c.Op == models.OpDelete {
			deletes = append(deletes, c.ID)
		} else {
			upserts = append(upserts, c.ID)
		}
	}
	return upserts, deletes
}

// Track marks ids as in flight as upserts without queueing them.
func (q *ChangeQueue) Track(ids ...uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, id := range ids {
		q.trackLocked(id, models.OpUpsert)
	}
}

func (q *ChangeQueue) trackLocked(id uuid.UUID, op models.Op) {
	entry := q.inFlight[id]
	if entry.refs == 0 || op == models.OpDelete {
		entry.op = op
	}
	entry.refs++
	q.inFlight[id] = entry
}

// Ack finishes one in-flight push of id.
func (q *ChangeQueue) Ack(id uuid.UUID) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.releaseLocked(id)
}

// Requeue finishes one in-flight push of change.ID and queues it again.
func (q *ChangeQueue) Requeue(change models.PendingChange) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.releaseLocked(change.ID)
	if _, ok := q.queued[change.ID]; ok && change.Op != models.OpDelete {
		return
	}
	if change.EnqueuedAt.IsZero() {
		change.EnqueuedAt = q.now()
	}
	q.putLocked(change)
}

func (q *ChangeQueue) releaseLocked(id uuid.UUID) {
	entry, ok := q.inFlight[id]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(q.inFlight, id)
		return
	}
	q.inFlight[id] = entry
}

// PendingIDs returns every queued or in-flight id with its op. A queued op
// shadows an in-flight one, except that a delete always wins.
func (q *ChangeQueue) PendingIDs() map[uuid.UUID]models.Op {
	q.mu.Lock()
	defer q.mu.Unlock()

	pending := make(map[uuid.UUID]models.Op, len(q.queued)+len(q.inFlight))
	for id, entry := range q.inFlight {
		pending[id] = entry.op
	}
	for id, c := range q.queued {
		if pending[id] != models.OpDelete {
			pending[id] = c.Op
		}
	}
	return pending
}

// Len returns the number of queued ids, not counting in-flight ones.
func (q *ChangeQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.queued)
}

// Snapshot returns the outstanding changes, queued and in flight, in
// enqueue order.
func (q *ChangeQueue) Snapshot() []models.PendingChange {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := make([]models.PendingChange, 0, len(q.queued)+len(q.inFlight))
	for _, c := range q.queued {
		out = append(out, c)
	}
	for id, entry := range q.inFlight {
		if _, ok := q.queued[id]; ok {
			continue
		}
		out = append(out, models.PendingChange{ID: id, Op: entry.op})
	}
	sortChanges(out)
	return out
}

// Restore queues changes, typically read back from a previous [ChangeQueue.Snapshot].
func (q *ChangeQueue) Restore(changes []models.PendingChange) {
	q.mu.Lock()
	defer q.mu.Unlock()

	for _, c := range changes {
		if c.ID == uuid.Nil || (c.Op != models.OpUpsert && c.Op != models.OpDelete) {
			continue
		}
		if c.EnqueuedAt.IsZero() {
			c.EnqueuedAt = q.now()
		}
		q.putLocked(c)
	}
}

// Clear forgets every queued and in-flight id.
func (q *ChangeQueue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()

	clear(q.queued)
	clear(q.inFlight)
}

func sortChanges(changes []models.PendingChange) {
	slices.SortFunc(changes, func(a, b models.PendingChange) int {
		if c := a.EnqueuedAt.Compare(b.EnqueuedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID.String(), b.ID.String())
	})
}
