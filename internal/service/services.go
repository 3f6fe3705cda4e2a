package service

import (
	"github.com/AdityaKanwar22/ShopSphere/internal/config"
	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
)

// Services aggregates every business service the HTTP layer depends on.
type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
	CartService    CartService
	OrderService   OrderService
}

// NewServices wires all services to their repositories and configuration.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		CatalogService: NewCatalogService(storages.ProductRepository, logger),
		CartService:    NewCartService(storages.UserRepository, logger),
		OrderService:   NewOrderService(storages.OrderRepository, storages.UserRepository, logger),
	}
}
