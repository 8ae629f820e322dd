package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/MKhiriev/go-note-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalRecordRepository is the local document store holding notes and
// clipboard entries.
type LocalRecordRepository interface {
	GetAll(ctx context.Context) ([]models.Record, error)
	Get(ctx context.Context, id uuid.UUID) (models.Record, error)
	Upsert(ctx context.Context, record models.Record) error
	Delete(ctx context.Context, id uuid.UUID) error
	// Apply writes a merge result in one transaction. An upsert only replaces
	// an older stored row, and deletes carry the local copies the merge saw:
	// a row modified since then is kept.
	Apply(ctx context.Context, upserts []models.Record, deletes []models.Record) error
}

// SettingsRepository is a namespaced string key/value store.
type SettingsRepository interface {
	Get(ctx context.Context, namespace, key string) (string, error)
	Set(ctx context.Context, namespace, key, value string) error
	Delete(ctx context.Context, namespace, key string) error
}

// Settings is a [SettingsRepository] bound to one namespace.
type Settings interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
