// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-note-sync/internal/credential"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

// syncHubService is the concrete implementation of SyncHubService.
//
// Device secrets are stored as bcrypt hashes. Verifying a bcrypt hash on
// every request is too slow for a polling client, so a keyed fingerprint of
// each verified credential is remembered per device and compared first.
type syncHubService struct {
	repo       store.HubRepository
	bcryptCost int

	hasher   *utils.Hasher
	mu       sync.RWMutex
	verified map[string]string

	logger *logger.Logger
}

// NewSyncHubService returns a SyncHubService over repo hashing secrets with
// bcryptCost.
func NewSyncHubService(repo store.HubRepository, bcryptCost int, logger *logger.Logger) SyncHubService {
	if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
		bcryptCost = bcrypt.DefaultCost
	}

	key := make([]byte, 32)
	_, _ = rand.Read(key)

	return &syncHubService{
		repo:       repo,
		bcryptCost: bcryptCost,
		hasher:     utils.NewHasher(key),
		verified:   make(map[string]string),
		logger:     logger,
	}
}

func (s *syncHubService) RegisterCode(ctx context.Context, req models.PairRequest) error {
	log := logger.FromContext(ctx)

	if req.DeviceID == "" || req.Secret == "" {
		return fmt.Errorf("%w: device id and secret are required", ErrInvalidDataProvided)
	}
	if !credential.ValidPairingCode(req.Code) {
		return fmt.Errorf("%w: %q", ErrInvalidPairingCode, req.Code)
	}

	owner, err := s.repo.FindCode(ctx, req.Code)
	switch {
	case err == nil && owner != req.DeviceID:
		return ErrCodeAlreadyTaken
	case err != nil && !errors.Is(err, store.ErrCodeNotFound):
		return fmt.Errorf("look up pairing code: %w", err)
	}

	device, err := s.repo.GetDevice(ctx, req.DeviceID)
	switch {
	case errors.Is(err, store.ErrDeviceNotFound):
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(req.Secret), s.bcryptCost)
		if hashErr != nil {
			return fmt.Errorf("hash device secret: %w", hashErr)
		}
		device = models.HubDevice{ID: req.DeviceID, SecretHash: hash}
	case err != nil:
		return fmt.Errorf("get device: %w", err)
	default:
		if !s.verify(device, req.Secret) {
			log.Warn().Str("func", "syncHubService.RegisterCode").Str("device_id", req.DeviceID).
				Msg("registration with a different secret rejected")
			return ErrSecretMismatch
		}
		if device.Code == req.Code && !device.Linked() {
			return nil
		}
	}

	// Registering a code always starts a new link, even for a linked device.
	device.AccountID = ""
	device.Code = req.Code
	if err = s.repo.SaveDevice(ctx, device); err != nil {
		return fmt.Errorf("save device: %w", err)
	}

	log.Info().Str("func", "syncHubService.RegisterCode").Str("device_id", req.DeviceID).Msg("pairing code registered")
	return nil
}

func (s *syncHubService) Authenticate(ctx context.Context, token string) (models.HubDevice, error) {
	deviceID, secret, ok := strings.Cut(token, ":")
	if !ok || deviceID == "" || secret == "" {
		return models.HubDevice{}, ErrInvalidCredentials
	}

	device, err := s.repo.GetDevice(ctx, deviceID)
	if errors.Is(err, store.ErrDeviceNotFound) {
		return models.HubDevice{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.HubDevice{}, fmt.Errorf("get device: %w", err)
	}

	if !s.verify(device, secret) {
		return models.HubDevice{}, ErrInvalidCredentials
	}
	return device, nil
}

// verify checks secret against the device's bcrypt hash, consulting the
// fingerprint cache first.
func (s *syncHubService) verify(device models.HubDevice, secret string) bool {
	fingerprint := s.hasher.HashString(device.ID + ":" + secret)

	s.mu.RLock()
	cached, ok := s.verified[device.ID]
	s.mu.RUnlock()
	if ok && cached == fingerprint {
		return true
	}

	if bcrypt.CompareHashAndPassword(device.SecretHash, []byte(secret)) != nil {
		return false
	}

	s.mu.Lock()
	s.verified[device.ID] = fingerprint
	s.mu.Unlock()
	return true
}

func (s *syncHubService) forget(deviceID string) {
	s.mu.Lock()
	delete(s.verified, deviceID)
	s.mu.Unlock()
}

func (s *syncHubService) PairStatus(_ context.Context, device models.HubDevice) models.PairStatus {
	return models.PairStatus{Linked: device.Linked()}
}

func (s *syncHubService) ClaimCode(ctx context.Context, claimer *models.HubDevice, code string) error {
	log := logger.FromContext(ctx)

	if !credential.ValidPairingCode(code) {
		return fmt.Errorf("%w: %q", ErrInvalidPairingCode, code)
	}

	deviceID, err := s.repo.TakeCode(ctx, code)
	if err != nil {
		return fmt.Errorf("take pairing code: %w", err)
	}
	device, err := s.repo.GetDevice(ctx, deviceID)
	if err != nil {
		return fmt.Errorf("get device: %w", err)
	}

	var accountID string
	if claimer != nil && claimer.Linked() {
		accountID = claimer.AccountID
	} else if accountID, err = s.repo.CreateAccount(ctx); err != nil {
		return fmt.Errorf("create account: %w", err)
	}

	device.AccountID = accountID
	device.Code = ""
	if err = s.repo.SaveDevice(ctx, device); err != nil {
		return fmt.Errorf("save device: %w", err)
	}

	log.Info().Str("func", "syncHubService.ClaimCode").
		Str("device_id", deviceID).
		Str("account_id", accountID).
		Msg("device linked")
	return nil
}

func (s *syncHubService) GetCollection(ctx context.Context, device models.HubDevice) (models.RemoteSnapshot, error) {
	if !device.Linked() {
		return models.RemoteSnapshot{}, ErrDeviceNotLinked
	}

	c, err := s.repo.GetCollection(ctx, device.AccountID)
	if err != nil {
		return models.RemoteSnapshot{}, fmt.Errorf("get collection: %w", err)
	}
	return c.Snapshot(), nil
}

func (s *syncHubService) ReplaceCollection(ctx context.Context, device models.HubDevice, req models.PushAllRequest) (int64, error) {
	if !device.Linked() {
		return 0, ErrDeviceNotLinked
	}

	records := make(map[uuid.UUID]models.Record, len(req.Records))
	for _, r := range req.Records {
		if err := validateRecord(r); err != nil {
			return 0, err
		}
		records[r.ID] = r
	}

	var version int64
	err := s.repo.UpdateCollection(ctx, device.AccountID, func(c *models.Collection) error {
		c.Records = records
		c.Version = max(req.Version, c.Version+1)
		version = c.Version
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("replace collection: %w", err)
	}
	return version, nil
}

func (s *syncHubService) PutRecord(ctx context.Context, device models.HubDevice, record models.Record) (int64, error) {
	if !device.Linked() {
		return 0, ErrDeviceNotLinked
	}
	if err := validateRecord(record); err != nil {
		return 0, err
	}

	var version int64
	err := s.repo.UpdateCollection(ctx, device.AccountID, func(c *models.Collection) error {
		if existing, ok := c.Records[record.ID]; ok {
			record = existing.Overlay(record)
		}
		c.Records[record.ID] = record
		c.Version++
		version = c.Version
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("put record: %w", err)
	}
	return version, nil
}

func (s *syncHubService) DeleteRecord(ctx context.Context, device models.HubDevice, id uuid.UUID) (int64, error) {
	if !device.Linked() {
		return 0, ErrDeviceNotLinked
	}

	var version int64
	err := s.repo.UpdateCollection(ctx, device.AccountID, func(c *models.Collection) error {
		if _, ok := c.Records[id]; !ok {
			return store.ErrRecordNotFound
		}
		delete(c.Records, id)
		c.Version++
		version = c.Version
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("delete record: %w", err)
	}
	return version, nil
}

func (s *syncHubService) RevokeSession(ctx context.Context, device models.HubDevice) error {
	s.forget(device.ID)
	if err := s.repo.DeleteDevice(ctx, device.ID); err != nil && !errors.Is(err, store.ErrDeviceNotFound) {
		return fmt.Errorf("delete device: %w", err)
	}

	logger.FromContext(ctx).Info().Str("func", "syncHubService.RevokeSession").Str("device_id", device.ID).Msg("session revoked")
	return nil
}

func validateRecord(r models.Record) error {
	if r.ID == uuid.Nil {
		return fmt.Errorf("%w: record id is required", ErrInvalidDataProvided)
	}
	if !r.Kind.Valid() {
		return fmt.Errorf("%w: unknown record kind %q", ErrInvalidDataProvided, r.Kind)
	}
	return nil
}
