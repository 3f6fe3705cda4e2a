package service

import (
	"context"
	"fmt"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// catalogService implements [CatalogService] on top of the product
// repository.
type catalogService struct {
	products store.ProductRepository
	logger   *logger.Logger
}

// NewCatalogService constructs a [CatalogService].
func NewCatalogService(products store.ProductRepository, logger *logger.Logger) CatalogService {
	logger.Debug().Msg("creating catalog service")
	return &catalogService{
		products: products,
		logger:   logger,
	}
}

// AddProduct persists a new catalog item.
//
// Error handling:
//   - Missing name, price or category → [ErrInvalidDataProvided].
func (s *catalogService) AddProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if product.Name == "" || product.Price <= 0 || product.Category == "" {
		return models.Product{}, ErrInvalidDataProvided
	}

	created, err := s.products.CreateProduct(ctx, product)
	if err != nil {
		return models.Product{}, fmt.Errorf("error creating product: %w", err)
	}

	return created, nil
}

// GetProduct returns a single catalog item.
func (s *catalogService) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	if productID == "" {
		return models.Product{}, ErrInvalidDataProvided
	}

	return s.products.GetProduct(ctx, productID)
}

// ListProducts returns the catalog items matching the filter.
func (s *catalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return s.products.ListProducts(ctx, filter)
}

// RemoveProduct deletes a catalog item.
func (s *catalogService) RemoveProduct(ctx context.Context, productID string) error {
	if productID == "" {
		return ErrInvalidDataProvided
	}

	return s.products.DeleteProduct(ctx, productID)
}
