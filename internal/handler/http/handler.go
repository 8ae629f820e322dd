package http

import (
	"github.com/MKhiriev/go-note-sync/internal/config"
	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/service"
)

// maxRequestBodyBytes bounds every JSON request body.
const maxRequestBodyBytes = 8 << 20

type Handler struct {
	services    *service.Services
	pairLimiter *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.ServerConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		pairLimiter: newIPRateLimiter(cfg.PairRateLimit, cfg.PairRateBurst),
		logger:      logger,
	}
}
