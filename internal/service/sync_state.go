package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	keyEnabled      = "enabled"
	keyLinked       = "linked"
	keyLastVersion  = "last_version"
	keyPendingQueue = "pending_queue"
)

// syncState is the sync engine's persisted state in the settings namespace.
// A missing key reads as its zero value.
type syncState struct {
	settings store.Settings
}

func newSyncState(settings store.Settings) *syncState {
	return &syncState{settings: settings}
}

func (s *syncState) Enabled(ctx context.Context) (bool, error) {
	return s.getBool(ctx, keyEnabled)
}

func (s *syncState) SetEnabled(ctx context.Context, enabled bool) error {
	return s.setBool(ctx, keyEnabled, enabled)
}

func (s *syncState) Linked(ctx context.Context) (bool, error) {
	return s.getBool(ctx, keyLinked)
}

func (s *syncState) SetLinked(ctx context.Context, linked bool) error {
	return s.setBool(ctx, keyLinked, linked)
}

func (s *syncState) LastVersion(ctx context.Context) (int64, error) {
	raw, err := s.get(ctx, keyLastVersion)
	if err != nil || raw == "" {
		return 0, err
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", keyLastVersion, err)
	}
	return v, nil
}

func (s *syncState) SetLastVersion(ctx context.Context, version int64) error {
	return s.settings.Set(ctx, keyLastVersion, strconv.FormatInt(version, 10))
}

func (s *syncState) PendingQueue(ctx context.Context) ([]models.PendingChange, error) {
	raw, err := s.get(ctx, keyPendingQueue)
	if err != nil || raw == "" {
		return nil, err
	}
	var changes []models.PendingChange
	if err = json.Unmarshal([]byte(raw), &changes); err != nil {
		return nil, fmt.Errorf("decode %s: %w", keyPendingQueue, err)
	}
	return changes, nil
}

func (s *syncState) SetPendingQueue(ctx context.Context, changes []models.PendingChange) error {
	if len(changes) == 0 {
		return s.delete(ctx, keyPendingQueue)
	}
	raw, err := json.Marshal(changes)
	if err != nil {
		return fmt.Errorf("encode %s: %w", keyPendingQueue, err)
	}
	return s.settings.Set(ctx, keyPendingQueue, string(raw))
}

// Clear forgets everything except the device identity, which lives in the
// same namespace under other keys.
func (s *syncState) Clear(ctx context.Context) error {
	var errs []error
	for _, key := range []string{keyEnabled, keyLinked, keyLastVersion, keyPendingQueue} {
		if err := s.delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *syncState) get(ctx context.Context, key string) (string, error) {
	v, err := s.settings.Get(ctx, key)
	if errors.Is(err, store.ErrSettingNotFound) {
		return "", nil
	}
	return v, err
}

func (s *syncState) delete(ctx context.Context, key string) error {
	err := s.settings.Delete(ctx, key)
	if errors.Is(err, store.ErrSettingNotFound) {
		return nil
	}
	return err
}

func (s *syncState) getBool(ctx context.Context, key string) (bool, error) {
	raw, err := s.get(ctx, key)
	if err != nil || raw == "" {
		return false, err
	}
	return strconv.ParseBool(raw)
}

func (s *syncState) setBool(ctx context.Context, key string, v bool) error {
	return s.settings.Set(ctx, key, strconv.FormatBool(v))
}
