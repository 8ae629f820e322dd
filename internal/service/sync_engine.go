// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/credential"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/workers"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	defaultPairingPollInterval = 2 * time.Second
	defaultPushDebounce        = 2 * time.Second
	defaultPullInterval        = 30 * time.Second
	defaultPushConcurrency     = 4

	revokeTimeout = 10 * time.Second

	subscriberBuffer = 16
)

// syncEngine is the concrete implementation of SyncEngine.
//
// mu guards the pairing state, the session epoch and every application of a
// network result to local state. Network calls are made without holding mu:
// each activity captures the epoch first and discards its result when the
// epoch moved while the call was in flight.
type syncEngine struct {
	credentials CredentialProvider
	adapter     adapter.ServerAdapter
	records     store.LocalRecordRepository
	state       *syncState
	queue       *ChangeQueue

	pushConcurrency int
	logger          *logger.Logger

	runCtx context.Context
	cancel context.CancelFunc

	pairingPoll *workers.Periodic
	pullPoll    *workers.Periodic
	flusher     *workers.Debouncer
	workers     *workers.Workers

	mu          sync.Mutex
	pairing     models.PairingState
	epoch       uint64
	registered  bool
	lastVersion int64

	// status mirrors pairing for lock-free reads.
	status atomic.Pointer[models.PairingState]
	closed atomic.Bool

	subsMu sync.Mutex
	subs   []chan models.SyncEvent

	background sync.WaitGroup
}

// NewSyncEngine builds a disabled SyncEngine. Zero or negative cadences in
// cfg fall back to 2s pairing poll, 2s push debounce, 30s pull poll and 4
// concurrent pushes.
func NewSyncEngine(
	credentials CredentialProvider,
	serverAdapter adapter.ServerAdapter,
	records store.LocalRecordRepository,
	settings store.Settings,
	clock workers.Clock,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) SyncEngine {
	if clock == nil {
		clock = workers.RealClock()
	}
	cfg = withWorkerDefaults(cfg)

	runCtx, cancel := context.WithCancel(context.Background())
	e := &syncEngine{
		credentials:     credentials,
		adapter:         serverAdapter,
		records:         records,
		state:           newSyncState(settings),
		queue:           NewChangeQueue(clock.Now),
		pushConcurrency: cfg.PushConcurrency,
		logger:          logger,
		runCtx:          runCtx,
		cancel:          cancel,
		pairing:         models.Disabled(),
	}
	initial := models.Disabled()
	e.status.Store(&initial)

	e.pairingPoll = workers.NewPeriodic(clock, cfg.PairingPollInterval, func() { _ = e.PollPairing(e.runCtx) })
	e.pullPoll = workers.NewPeriodic(clock, cfg.PullInterval, func() { _ = e.Pull(e.runCtx) })
	e.flusher = workers.NewDebouncer(clock, cfg.PushDebounce, func() { _ = e.Flush(e.runCtx) })
	e.workers = workers.New(e.flusher, e.pairingPoll, e.pullPoll)

	return e
}

func withWorkerDefaults(cfg config.ClientWorkers) config.ClientWorkers {
	if cfg.PairingPollInterval <= 0 {
		cfg.PairingPollInterval = defaultPairingPollInterval
	}
	if cfg.PushDebounce <= 0 {
		cfg.PushDebounce = defaultPushDebounce
	}
	if cfg.PullInterval <= 0 {
		cfg.PullInterval = defaultPullInterval
	}
	if cfg.PushConcurrency <= 0 {
		cfg.PushConcurrency = defaultPushConcurrency
	}
	return cfg
}

func (e *syncEngine) Enable(ctx context.Context) error {
	if e.closed.Load() {
		return ErrEngineClosed
	}

	identity := e.credentials.Identity(ctx)
	e.adapter.SetToken(identity.BearerToken())

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed.Load() {
		return ErrEngineClosed
	}
	if e.pairing.Phase != models.PhaseDisabled {
		return nil
	}

	if err := e.state.SetEnabled(ctx, true); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.Enable").Msg("failed to persist enabled flag")
	}
	linked, err := e.state.Linked(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.Enable").Msg("failed to read linked flag, pairing again")
		linked = false
	}

	e.epoch++
	if linked {
		e.resumeLinkedLocked(ctx)
		return nil
	}

	e.queue.Clear()
	return e.startPairingLocked()
}

// resumeLinkedLocked restores the state of a previous linked session and
// starts pulling right away.
func (e *syncEngine) resumeLinkedLocked(ctx context.Context) {
	version, err := e.state.LastVersion(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.resumeLinkedLocked").Msg("failed to read last version")
	}
	e.lastVersion = version

	pending, err := e.state.PendingQueue(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.resumeLinkedLocked").Msg("failed to read pending queue")
	}
	e.queue.Clear()
	e.queue.Restore(pending)

	e.setPairingLocked(models.Linked())
	e.pullPoll.Start(true)
	if e.queue.Len() > 0 {
		e.flusher.Trigger()
	}

	e.logger.Info().Str("func", "syncEngine.resumeLinkedLocked").
		Int64("last_version", version).
		Int("pending", len(pending)).
		Msg("resumed linked sync session")
}

func (e *syncEngine) startPairingLocked() error {
	code, err := credential.GeneratePairingCode()
	if err != nil {
		return fmt.Errorf("generate pairing code: %w", err)
	}

	e.registered = false
	e.setPairingLocked(models.Pairing(code))
	e.pairingPoll.Start(true)

	e.logger.Info().Str("func", "syncEngine.startPairingLocked").Str("code", code).Msg("waiting for pairing code to be claimed")
	return nil
}

func (e *syncEngine) Disable(ctx context.Context) error {
	e.mu.Lock()
	wasLinked := e.pairing.Phase == models.PhaseLinked
	if e.pairing.Phase != models.PhaseDisabled {
		e.epoch++
		e.workers.Stop()
		e.setPairingLocked(models.Disabled())
	}
	e.queue.Clear()
	e.registered = false
	e.lastVersion = 0
	if err := e.state.Clear(ctx); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.Disable").Msg("failed to clear persisted sync state")
	}
	e.mu.Unlock()

	if wasLinked {
		e.revokeInBackground()
	}
	return nil
}

// revokeInBackground tells the server to forget this device. Nothing waits
// for the result except Close.
func (e *syncEngine) revokeInBackground() {
	e.background.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), revokeTimeout)
		defer cancel()

		if err := e.adapter.RevokeSession(ctx); err != nil {
			e.logger.Warn().Err(err).Str("func", "syncEngine.revokeInBackground").Msg("session revoke failed")
			return
		}
		e.logger.Info().Str("func", "syncEngine.revokeInBackground").Msg("session revoked")
	})
}

func (e *syncEngine) Status() models.PairingState {
	return *e.status.Load()
}

// Restore enables sync again when the previous process left it enabled and
// reports whether it did.
func (e *syncEngine) Restore(ctx context.Context) (bool, error) {
	enabled, err := e.state.Enabled(ctx)
	if err != nil {
		return false, fmt.Errorf("read enabled flag: %w", err)
	}
	if !enabled {
		return false, nil
	}
	return true, e.Enable(ctx)
}

// StoredStatus derives the state from the persisted flags. A pairing code
// only lives in the process that registered it, so it is never reported.
func (e *syncEngine) StoredStatus(ctx context.Context) (models.PairingState, error) {
	enabled, err := e.state.Enabled(ctx)
	if err != nil {
		return models.Disabled(), fmt.Errorf("read enabled flag: %w", err)
	}
	if !enabled {
		return models.Disabled(), nil
	}

	linked, err := e.state.Linked(ctx)
	if err != nil {
		return models.Disabled(), fmt.Errorf("read linked flag: %w", err)
	}
	if linked {
		return models.Linked(), nil
	}
	return models.Pairing(""), nil
}

func (e *syncEngine) OnLocalChange(id uuid.UUID, op models.Op) {
	if e.closed.Load() || e.status.Load().Phase != models.PhaseLinked {
		return
	}
	e.queue.Enqueue(id, op)
	e.flusher.Trigger()
}

func (e *syncEngine) Subscribe() <-chan models.SyncEvent {
	ch := make(chan models.SyncEvent, subscriberBuffer)

	e.subsMu.Lock()
	defer e.subsMu.Unlock()
	if e.closed.Load() {
		close(ch)
		return ch
	}
	e.subs = append(e.subs, ch)
	return ch
}

func (e *syncEngine) Close(ctx context.Context) error {
	if !e.closed.CompareAndSwap(false, true) {
		return nil
	}

	e.mu.Lock()
	e.epoch++
	e.workers.Stop()
	var err error
	if e.pairing.Phase == models.PhaseLinked {
		err = e.state.SetPendingQueue(ctx, e.queue.Snapshot())
	}
	e.mu.Unlock()

	e.cancel()
	e.workers.Wait()
	e.background.Wait()

	e.subsMu.Lock()
	for _, ch := range e.subs {
		close(ch)
	}
	e.subs = nil
	e.subsMu.Unlock()

	if err != nil {
		return fmt.Errorf("persist pending queue: %w", err)
	}
	return nil
}

// fallBackToPairingLocked handles a rejected credential: the session is
// treated as unlinked and a new code is registered. Local records and the
// queue are kept; the full push after re-linking delivers them.
func (e *syncEngine) fallBackToPairingLocked(ctx context.Context, cause error) {
	e.logger.Warn().Err(cause).Str("func", "syncEngine.fallBackToPairingLocked").
		Msg("credential rejected by server, pairing again")

	e.epoch++
	e.workers.Stop()
	e.lastVersion = 0
	if err := e.state.SetLinked(ctx, false); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.fallBackToPairingLocked").Msg("failed to clear linked flag")
	}

	if err := e.startPairingLocked(); err != nil {
		e.logger.Error().Err(err).Str("func", "syncEngine.fallBackToPairingLocked").Msg("cannot restart pairing, disabling sync")
		e.setPairingLocked(models.Disabled())
	}
}

func (e *syncEngine) persistQueueLocked(ctx context.Context) {
	if err := e.state.SetPendingQueue(ctx, e.queue.Snapshot()); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.persistQueueLocked").Msg("failed to persist pending queue")
	}
}

func (e *syncEngine) setPairingLocked(state models.PairingState) {
	e.pairing = state
	e.status.Store(&state)
	e.publish(models.SyncEvent{Kind: models.EventStatusChanged, State: state})
}

func (e *syncEngine) publish(event models.SyncEvent) {
	e.subsMu.Lock()
	defer e.subsMu.Unlock()

	for _, ch := range e.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
