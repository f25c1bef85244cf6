package http

import (
	"github.com/MKhiriev/go-field-inspections/internal/config"
	"github.com/MKhiriev/go-field-inspections/internal/logger"
	"github.com/MKhiriev/go-field-inspections/internal/service"
	"github.com/MKhiriev/go-field-inspections/internal/utils"
)

type Handler struct {
	services *service.Services

	// integrityCheck enables verification of the HashSHA256 request header.
	integrityCheck bool

	allowedOrigins []string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	logger.Info().
		Bool("integrity_check", cfg.App.HashKey != "").
		Strs("allowed_origins", cfg.Server.AllowedOrigins).
		Msg("http handler created")

	return &Handler{
		services:       services,
		integrityCheck: cfg.App.HashKey != "",
		allowedOrigins: cfg.Server.AllowedOrigins,
		logger:         logger,
	}
}
