// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-note-sync/internal/service"
	"github.com/MKhiriev/go-note-sync/models"
)

// Client defines the lifecycle contract for runnable client applications.
type Client interface {
	// Run executes one sub-command. "run" and "enable" block until ctx is
	// done.
	Run(ctx context.Context, command string, args []string) error

	// Close stops background work and releases local storage.
	Close() error
}

// pairingScreen shows the pairing code while the engine waits for a claim.
type pairingScreen interface {
	PairingFlow(ctx context.Context, engine service.SyncEngine) (models.PairingState, error)
}
