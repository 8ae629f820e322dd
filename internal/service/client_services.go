package service

import (
	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
	"github.com/MKhiriev/go-note-sync/internal/workers"
)

type ClientServices struct {
	SyncEngine    SyncEngine
	RecordService ClientRecordService
}

// NewClientServices wires the sync engine and the record service on top of
// the local storages. The record service reports its writes to the engine.
func NewClientServices(
	storages *store.ClientStorages,
	settings store.Settings,
	credentials CredentialProvider,
	serverAdapter adapter.ServerAdapter,
	clock workers.Clock,
	cfg config.ClientWorkers,
	logger *logger.Logger,
) *ClientServices {
	engine := NewSyncEngine(credentials, serverAdapter, storages.RecordRepository, settings, clock, cfg, logger)

	return &ClientServices{
		SyncEngine:    engine,
		RecordService: NewClientRecordService(storages.RecordRepository, engine, clock, logger),
	}
}
