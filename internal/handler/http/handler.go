package http

import (
	"github.com/MKhiriev/go-insight-keeper/internal/config"
	"github.com/MKhiriev/go-insight-keeper/internal/logger"
	"github.com/MKhiriev/go-insight-keeper/internal/service"
)

type Handler struct {
	services *service.Services

	cfg          config.Server
	loginLimiter *ipRateLimiter

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		cfg:          cfg,
		loginLimiter: newIPRateLimiter(cfg.LoginRatePerMinute),
		logger:       logger,
	}
}
