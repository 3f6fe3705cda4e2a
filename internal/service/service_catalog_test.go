package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

func newTestCatalogService(products *mockProductRepository) *catalogService {
	return &catalogService{
		products: products,
		logger:   logger.Nop(),
	}
}

func TestCatalogService_AddProduct_Success(t *testing.T) {
	products := &mockProductRepository{
		createProductFn: func(_ context.Context, product models.Product) (models.Product, error) {
			product.ProductID = "prod-1"
			return product, nil
		},
	}
	svc := newTestCatalogService(products)

	created, err := svc.AddProduct(context.Background(), models.Product{
		Name:     "T-Shirt",
		Price:    19900,
		Category: "Men",
	})

	require.NoError(t, err)
	assert.Equal(t, "prod-1", created.ProductID)
}

func TestCatalogService_AddProduct_MissingFields(t *testing.T) {
	svc := newTestCatalogService(&mockProductRepository{})

	tests := []struct {
		name    string
		product models.Product
	}{
		{name: "no name", product: models.Product{Price: 100, Category: "Men"}},
		{name: "zero price", product: models.Product{Name: "T-Shirt", Category: "Men"}},
		{name: "no category", product: models.Product{Name: "T-Shirt", Price: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddProduct(context.Background(), tt.product)
			require.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	products := &mockProductRepository{
		getProductFn: func(_ context.Context, _ string) (models.Product, error) {
			return models.Product{}, store.ErrProductNotFound
		},
	}
	svc := newTestCatalogService(products)

	_, err := svc.GetProduct(context.Background(), "ghost")

	require.ErrorIs(t, err, store.ErrProductNotFound)
}

func TestCatalogService_ListProducts_PassesFilter(t *testing.T) {
	bestseller := true
	filter := models.ProductFilter{Category: "Men", Bestseller: &bestseller}

	products := &mockProductRepository{
		listProductsFn: func(_ context.Context, f models.ProductFilter) ([]models.Product, error) {
			assert.Equal(t, filter, f)
			return []models.Product{{ProductID: "prod-1"}}, nil
		},
	}
	svc := newTestCatalogService(products)

	result, err := svc.ListProducts(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestCatalogService_RemoveProduct_EmptyID(t *testing.T) {
	svc := newTestCatalogService(&mockProductRepository{})

	err := svc.RemoveProduct(context.Background(), "")

	require.ErrorIs(t, err, ErrInvalidDataProvided)
}
