package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

// Flush drains the change queue and pushes every drained id on its own
// request. Failed ids are requeued and the debouncer re-armed.
func (e *syncEngine) Flush(ctx context.Context) error {
	e.mu.Lock()
	if e.pairing.Phase != models.PhaseLinked {
		e.mu.Unlock()
		return nil
	}
	epoch := e.epoch
	upserts, deletes := e.queue.Drain()
	e.mu.Unlock()

	changes := make([]models.PendingChange, 0, len(upserts)+len(deletes))
	for _, id := range upserts {
		changes = append(changes, models.PendingChange{ID: id, Op: models.OpUpsert})
	}
	for _, id := range deletes {
		changes = append(changes, models.PendingChange{ID: id, Op: models.OpDelete})
	}
	if len(changes) == 0 {
		return nil
	}

	results := make([]error, len(changes))
	var g errgroup.Group
	g.SetLimit(e.pushConcurrency)
	for i, change := range changes {
		g.Go(func() error {
			results[i] = e.pushChange(ctx, change)
			return results[i]
		})
	}
	_ = g.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.epoch != epoch {
		for _, change := range changes {
			e.queue.Ack(change.ID)
		}
		e.logger.Debug().Str("func", "syncEngine.Flush").Msg("session changed during flush, result discarded")
		return nil
	}

	var failed []error
	unauthorized := false
	for i, change := range changes {
		if results[i] == nil {
			e.queue.Ack(change.ID)
			continue
		}
		e.queue.Requeue(change)
		failed = append(failed, results[i])
		if errors.Is(results[i], adapter.ErrUnauthorized) {
			unauthorized = true
		}
	}
	e.persistQueueLocked(ctx)

	if len(failed) == 0 {
		e.logger.Debug().Str("func", "syncEngine.Flush").
			Int("upserts", len(upserts)).
			Int("deletes", len(deletes)).
			Msg("flushed local changes")
		return nil
	}

	err := fmt.Errorf("flush: %d of %d changes failed: %w", len(failed), len(changes), errors.Join(failed...))
	if unauthorized {
		e.fallBackToPairingLocked(ctx, err)
		return err
	}

	e.flusher.Trigger()
	e.logger.Warn().Err(err).Str("func", "syncEngine.Flush").Msg("requeued failed changes")
	return err
}

func (e *syncEngine) pushChange(ctx context.Context, change models.PendingChange) error {
	if change.Op == models.OpDelete {
		return e.adapter.DeleteOne(ctx, change.ID)
	}

	record, err := e.records.Get(ctx, change.ID)
	if errors.Is(err, store.ErrRecordNotFound) {
		// Created and deleted within one debounce window.
		return nil
	}
	if err != nil {
		return fmt.Errorf("read local record %s: %w", change.ID, err)
	}
	return e.adapter.PushOne(ctx, record)
}

// PushAll replaces the remote collection with every local record, sending
// the last observed version plus one.
func (e *syncEngine) PushAll(ctx context.Context) error {
	e.mu.Lock()
	if e.pairing.Phase != models.PhaseLinked {
		e.mu.Unlock()
		return ErrNotLinked
	}
	epoch := e.epoch
	version := e.lastVersion + 1

	records, err := e.records.GetAll(ctx)
	if err != nil {
		e.mu.Unlock()
		e.logger.Error().Err(err).Str("func", "syncEngine.PushAll").Msg("failed to read local records")
		return fmt.Errorf("read local records: %w", err)
	}
	ids := recordIDs(records)
	e.queue.Track(ids...)
	e.mu.Unlock()

	err = e.adapter.PushAll(ctx, records, version)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.epoch != epoch {
		for _, id := range ids {
			e.queue.Ack(id)
		}
		e.logger.Debug().Str("func", "syncEngine.PushAll").Msg("session changed during full push, result discarded")
		return nil
	}

	if err != nil {
		for _, id := range ids {
			e.queue.Requeue(models.PendingChange{ID: id, Op: models.OpUpsert})
		}
		e.persistQueueLocked(ctx)

		if errors.Is(err, adapter.ErrUnauthorized) {
			e.fallBackToPairingLocked(ctx, err)
		} else {
			e.flusher.Trigger()
			e.logger.Warn().Err(err).Str("func", "syncEngine.PushAll").
				Int("records", len(records)).
				Msg("full push failed, records requeued")
		}
		return fmt.Errorf("push all: %w", err)
	}

	for _, id := range ids {
		e.queue.Ack(id)
	}
	e.lastVersion = version
	if err = e.state.SetLastVersion(ctx, version); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.PushAll").Msg("failed to persist last version")
	}

	e.logger.Info().Str("func", "syncEngine.PushAll").
		Int("records", len(records)).
		Int64("version", version).
		Msg("pushed full collection")
	return nil
}

// seed runs once when the device becomes linked. It merges the account's
// current collection first so a joining device never replaces notes other
// devices already pushed, then sends the union as a full push. Local
// records stay in flight during the pull so the merge cannot drop them.
func (e *syncEngine) seed(ctx context.Context) {
	e.mu.Lock()
	if e.pairing.Phase != models.PhaseLinked {
		e.mu.Unlock()
		return
	}
	epoch := e.epoch
	records, err := e.records.GetAll(ctx)
	if err != nil {
		e.mu.Unlock()
		e.logger.Error().Err(err).Str("func", "syncEngine.seed").Msg("failed to read local records")
		return
	}
	ids := recordIDs(records)
	e.queue.Track(ids...)
	e.mu.Unlock()

	pullErr := e.Pull(ctx)

	e.mu.Lock()
	if pullErr != nil {
		// Without the remote collection a full push could erase it, so the
		// local records go out one by one instead.
		if e.epoch == epoch {
			for _, id := range ids {
				e.queue.Requeue(models.PendingChange{ID: id, Op: models.OpUpsert})
			}
			e.persistQueueLocked(ctx)
			if e.pairing.Phase == models.PhaseLinked {
				e.flusher.Trigger()
			}
		} else {
			for _, id := range ids {
				e.queue.Ack(id)
			}
		}
		e.mu.Unlock()
		e.logger.Warn().Err(pullErr).Str("func", "syncEngine.seed").Msg("initial pull failed, local records queued")
		return
	}
	for _, id := range ids {
		e.queue.Ack(id)
	}
	e.mu.Unlock()

	if err = e.PushAll(ctx); err != nil {
		// Failures are requeued by PushAll and delivered by the flush.
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.epoch == epoch && e.queue.Len() > 0 {
		// Changes kept from an earlier session.
		e.flusher.Trigger()
	}
}

func recordIDs(records []models.Record) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.ID)
	}
	return ids
}
