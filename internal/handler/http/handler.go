package http

import (
	"github.com/AdityaKanwar22/ShopSphere/internal/config"
	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      config.StructuredConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
