// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package credential

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	keyDeviceID     = "device_id"
	keyDeviceSecret = "device_secret"

	secretBytes = 32
)

// Store lazily creates the device identity and persists it in settings.
//
// Persistence failures never surface to callers: the identity generated for
// the failed call is kept in memory for the rest of the process lifetime and
// the failure is logged.
type Store struct {
	settings store.Settings
	logger   *logger.Logger

	mu       sync.Mutex
	identity models.DeviceIdentity
}

// NewStore returns a Store persisting into settings.
func NewStore(settings store.Settings, logger *logger.Logger) *Store {
	return &Store{
		settings: settings,
		logger:   logger,
	}
}

// Identity returns the device identity, creating and persisting it on the
// first call.
func (s *Store) Identity(ctx context.Context) models.DeviceIdentity {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.identity.IsZero() {
		return s.identity
	}

	stored, err := s.load(ctx)
	if err == nil {
		s.identity = stored
		return s.identity
	}
	if !errors.Is(err, store.ErrSettingNotFound) {
		s.logger.Warn().Err(err).Str("func", "credential.Store.Identity").
			Msg("failed to read device identity, generating a new one")
	}

	generated := newIdentity()
	s.identity = generated

	if err := s.persist(ctx, generated); err != nil {
		s.logger.Error().Err(err).Str("func", "credential.Store.Identity").
			Str("device_id", generated.ID).
			Msg("failed to persist device identity, using in-memory identity for this process")
		return s.identity
	}

	s.logger.Info().Str("func", "credential.Store.Identity").
		Str("device_id", generated.ID).
		Msg("created device identity")
	return s.identity
}

// BearerToken returns the bearer credential derived from [Store.Identity].
func (s *Store) BearerToken(ctx context.Context) string {
	return s.Identity(ctx).BearerToken()
}

func (s *Store) load(ctx context.Context) (models.DeviceIdentity, error) {
	id, err := s.settings.Get(ctx, keyDeviceID)
	if err != nil {
		return models.DeviceIdentity{}, err
	}
	secret, err := s.settings.Get(ctx, keyDeviceSecret)
	if err != nil {
		return models.DeviceIdentity{}, err
	}

	identity := models.DeviceIdentity{ID: id, Secret: secret}
	if identity.IsZero() {
		return models.DeviceIdentity{}, store.ErrSettingNotFound
	}
	return identity, nil
}

func (s *Store) persist(ctx context.Context, identity models.DeviceIdentity) error {
	// secret first: a stored id without its secret reads as absent
	if err := s.settings.Set(ctx, keyDeviceSecret, identity.Secret); err != nil {
		return fmt.Errorf("store device secret: %w", err)
	}
	if err := s.settings.Set(ctx, keyDeviceID, identity.ID); err != nil {
		return fmt.Errorf("store device id: %w", err)
	}
	return nil
}

func newIdentity() models.DeviceIdentity {
	raw := make([]byte, secretBytes)
	// crypto/rand.Read never returns an error
	_, _ = rand.Read(raw)

	return models.DeviceIdentity{
		ID:     utils.NewUUIDGenerator().Generate(),
		Secret: base64.RawURLEncoding.EncodeToString(raw),
	}
}
