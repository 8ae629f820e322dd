package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/models"
)

// PollPairing runs one pairing cycle: it registers the current code until
// the server accepts it, then asks whether the code was claimed. On a
// positive answer the engine becomes linked, merges the account's remote
// collection and seeds the server with one full push.
func (e *syncEngine) PollPairing(ctx context.Context) error {
	e.mu.Lock()
	if e.pairing.Phase != models.PhasePairing {
		e.mu.Unlock()
		return nil
	}
	epoch, code, registered := e.epoch, e.pairing.Code, e.registered
	e.mu.Unlock()

	if !registered {
		identity := e.credentials.Identity(ctx)
		if err := e.adapter.RegisterCode(ctx, code, identity); err != nil {
			e.logger.Warn().Err(err).Str("func", "syncEngine.PollPairing").Msg("pairing code registration failed, retrying next cycle")
			return fmt.Errorf("register pairing code: %w", err)
		}

		e.mu.Lock()
		if e.epoch != epoch {
			e.mu.Unlock()
			return nil
		}
		e.registered = true
		e.mu.Unlock()
	}

	status, err := e.adapter.PollStatus(ctx)
	if err != nil {
		if errors.Is(err, adapter.ErrUnauthorized) {
			// The server no longer knows this device, e.g. after a restart.
			e.mu.Lock()
			if e.epoch == epoch {
				e.registered = false
			}
			e.mu.Unlock()
		}
		e.logger.Warn().Err(err).Str("func", "syncEngine.PollPairing").Msg("pairing status poll failed")
		return fmt.Errorf("poll pairing status: %w", err)
	}
	if !status.Linked {
		return nil
	}

	e.mu.Lock()
	if e.epoch != epoch || e.pairing.Phase != models.PhasePairing {
		e.mu.Unlock()
		return nil
	}
	e.epoch++
	if err = e.state.SetLinked(ctx, true); err != nil {
		e.logger.Warn().Err(err).Str("func", "syncEngine.PollPairing").Msg("failed to persist linked flag")
	}
	e.pairingPoll.Stop()
	e.setPairingLocked(models.Linked())
	e.pullPoll.Start(false)
	e.mu.Unlock()

	e.logger.Info().Str("func", "syncEngine.PollPairing").Str("code", code).Msg("pairing code claimed, device linked")

	e.seed(ctx)
	return nil
}
