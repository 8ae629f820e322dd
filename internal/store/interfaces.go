package store

import (
	"context"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// HubRepository holds the reference server's devices, pairing codes and
// per-account collections.
type HubRepository interface {
	SaveDevice(ctx context.Context, device models.HubDevice) error
	GetDevice(ctx context.Context, id string) (models.HubDevice, error)
	DeleteDevice(ctx context.Context, id string) error

	// FindCode returns the device that registered code without consuming it.
	FindCode(ctx context.Context, code string) (string, error)
	// TakeCode resolves a pairing code to the device that registered it and
	// forgets the code.
	TakeCode(ctx context.Context, code string) (string, error)

	CreateAccount(ctx context.Context) (string, error)
	GetCollection(ctx context.Context, accountID string) (models.Collection, error)
	// UpdateCollection runs fn on the account's collection under the
	// repository lock and stores the result when fn returns nil.
	UpdateCollection(ctx context.Context, accountID string, fn func(c *models.Collection) error) error
}
