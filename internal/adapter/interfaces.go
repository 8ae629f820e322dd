// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the sync client and
// the remote sync server.
//
// The primary abstraction is [ServerAdapter], which decouples the sync
// engine from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// The adapter performs no retries. Every failure is reported as one of the
// sentinel errors in errors.go so that callers can use [errors.Is]:
// [ErrUnauthorized] for 401/403, [ErrMalformedPayload] for undecodable
// bodies and [ErrTransient] for everything else.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the sync
// server. Each method is a single bounded request/response exchange.
type ServerAdapter interface {
	// SetToken stores the bearer credential ("deviceID:secret") attached to
	// all subsequent authenticated requests.
	SetToken(token string)

	// RegisterCode announces a pairing code together with the device
	// identity. It needs no bearer credential.
	RegisterCode(ctx context.Context, code string, identity models.DeviceIdentity) error

	// PollStatus reports whether the registered code has been claimed.
	PollStatus(ctx context.Context) (models.PairStatus, error)

	// ClaimCode links the device that registered code to this device's
	// account (or to a new account when this device is not linked).
	ClaimCode(ctx context.Context, code string) error

	// PushAll replaces the whole remote collection and sets its version.
	PushAll(ctx context.Context, records []models.Record, version int64) error

	// PushOne creates or replaces a single remote record.
	PushOne(ctx context.Context, record models.Record) error

	// DeleteOne removes a single remote record. Deleting a record the
	// server does not have succeeds.
	DeleteOne(ctx context.Context, id uuid.UUID) error

	// PullAll fetches the whole remote collection and its version.
	PullAll(ctx context.Context) (models.RemoteSnapshot, error)

	// RevokeSession unlinks this device on the server.
	RevokeSession(ctx context.Context) error
}
