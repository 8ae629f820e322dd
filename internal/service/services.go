package service

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/store"
)

type Services struct {
	SyncHubService SyncHubService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.Version, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		SyncHubService: NewSyncHubService(storages.HubRepository, cfg.BcryptCost, logger),
		AppInfoService: appInfo,
	}, nil
}
