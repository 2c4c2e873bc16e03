package http

import (
	"github.com/MKhiriev/freelance-hub/internal/config"
	"github.com/MKhiriev/freelance-hub/internal/logger"
	"github.com/MKhiriev/freelance-hub/internal/service"
)

type Handler struct {
	services *service.Services

	// authDisabled bypasses the auth middleware entirely. Set from
	// config.Auth.Disabled; meant for local development only.
	authDisabled bool

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Auth, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:     services,
		authDisabled: cfg.Disabled,
		logger:       logger,
	}
}
