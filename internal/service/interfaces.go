package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncHubService is the reference server's pairing and collection logic.
// Every method taking a device expects one returned by Authenticate.
type SyncHubService interface {
	// RegisterCode records that req.DeviceID waits for req.Code to be
	// claimed. Repeating the same registration is a no-op.
	RegisterCode(ctx context.Context, req models.PairRequest) error

	// Authenticate resolves a bearer credential "deviceID:secret".
	Authenticate(ctx context.Context, token string) (models.HubDevice, error)

	PairStatus(ctx context.Context, device models.HubDevice) models.PairStatus

	// ClaimCode links the device that registered code to an account: the
	// claimer's account when claimer is linked, a new account otherwise.
	// claimer may be nil for anonymous claims.
	ClaimCode(ctx context.Context, claimer *models.HubDevice, code string) error

	GetCollection(ctx context.Context, device models.HubDevice) (models.RemoteSnapshot, error)
	// ReplaceCollection overwrites the collection and returns its new version,
	// the larger of the requested one and the current one plus one.
	ReplaceCollection(ctx context.Context, device models.HubDevice, req models.PushAllRequest) (int64, error)
	PutRecord(ctx context.Context, device models.HubDevice, record models.Record) (int64, error)
	DeleteRecord(ctx context.Context, device models.HubDevice, id uuid.UUID) (int64, error)

	// RevokeSession forgets the device.
	RevokeSession(ctx context.Context, device models.HubDevice) error
}

// AppInfoService reports build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
