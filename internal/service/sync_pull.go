package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/models"
)

// Pull fetches the remote snapshot and merges it into the local store.
// Transport and payload errors skip this cycle only.
func (e *syncEngine) Pull(ctx context.Context) error {
	e.mu.Lock()
	if e.pairing.Phase != models.PhaseLinked {
		e.mu.Unlock()
		return nil
	}
	epoch := e.epoch
	e.mu.Unlock()

	snapshot, err := e.adapter.PullAll(ctx)
	if err != nil {
		err = fmt.Errorf("pull: %w", err)
		if errors.Is(err, adapter.ErrUnauthorized) {
			e.mu.Lock()
			if e.epoch == epoch && e.pairing.Phase == models.PhaseLinked {
				e.fallBackToPairingLocked(ctx, err)
			}
			e.mu.Unlock()
			return err
		}
		e.logger.Warn().Err(err).Str("func", "syncEngine.Pull").Msg("pull skipped for this cycle")
		return err
	}

	e.mu.Lock()
	if e.epoch != epoch || e.pairing.Phase != models.PhaseLinked {
		e.mu.Unlock()
		e.logger.Debug().Str("func", "syncEngine.Pull").Msg("session changed during pull, result discarded")
		return nil
	}

	plan, err := e.mergeLocked(ctx, snapshot)
	e.mu.Unlock()
	if err != nil {
		e.logger.Error().Err(err).Str("func", "syncEngine.Pull").Msg("merge failed")
		return err
	}

	if !plan.Empty() {
		e.publish(models.SyncEvent{Kind: models.EventRecordsMerged, State: e.Status(), Plan: plan})
	}
	e.logger.Debug().Str("func", "syncEngine.Pull").
		Int64("version", snapshot.Version).
		Int("created", len(plan.Create)).
		Int("updated", len(plan.Update)).
		Int("deleted", len(plan.Delete)).
		Int("skipped", plan.Skipped).
		Msg("merged remote snapshot")
	return nil
}

// mergeLocked applies snapshot to the local store and records its version
// as the new baseline. Record edits do not take the engine mutex, so the
// store re-checks every write against the local copy the plan was built
// from and keeps rows edited in between.
func (e *syncEngine) mergeLocked(ctx context.Context, snapshot models.RemoteSnapshot) (models.MergePlan, error) {
	local, err := e.records.GetAll(ctx)
	if err != nil {
		return models.MergePlan{}, fmt.Errorf("read local records: %w", err)
	}

	plan := BuildMergePlan(snapshot, local, e.queue.PendingIDs())
	if !plan.Empty() {
		if err = e.records.Apply(ctx, slices.Concat(plan.Create, plan.Update), deletedCopies(local, plan.Delete)); err != nil {
			return models.MergePlan{}, fmt.Errorf("apply merge plan: %w", err)
		}
	}

	e.lastVersion = snapshot.Version
	if err = e.state.SetLastVersion(ctx, snapshot.Version); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.mergeLocked").Msg("failed to persist last version")
	}
	return plan, nil
}

func deletedCopies(local []models.Record, ids []uuid.UUID) []models.Record {
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[uuid.UUID]models.Record, len(local))
	for _, r := range local {
		byID[r.ID] = r
	}

	copies := make([]models.Record, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			copies = append(copies, r)
		}
	}
	return copies
}
