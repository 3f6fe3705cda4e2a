package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

func newTestProductRepo(t *testing.T) (*productRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &productRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func productColumns() []string {
	return []string{"product_id", "name", "description", "price", "images", "category", "sub_category", "sizes", "bestseller", "created_at"}
}

func TestCreateProduct_Success(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	product := models.Product{
		Name:        "Round Neck T-Shirt",
		Description: "Lightweight cotton",
		Price:       19900,
		Images:      []string{"https://cdn.example.com/p1.png"},
		Category:    "Men",
		SubCategory: "Topwear",
		Sizes:       []string{"S", "M", "L"},
	}

	mock.ExpectQuery("INSERT INTO products").
		WithArgs(product.Name, product.Description, product.Price, sqlmock.AnyArg(),
			product.Category, product.SubCategory, sqlmock.AnyArg(), product.Bestseller).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "created_at"}).AddRow("prod-1", time.Now()))

	created, err := repo.CreateProduct(ctx, product)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ProductID != "prod-1" {
		t.Errorf("expected ProductID=prod-1, got %s", created.ProductID)
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT (.+) FROM products").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProduct(ctx, "ghost")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestListProducts_DecodesJSONColumns(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows(productColumns()).
		AddRow("prod-1", "T-Shirt", "desc", int64(19900), []byte(`["a.png","b.png"]`), "Men", "Topwear", []byte(`["M","L"]`), true, now)

	mock.ExpectQuery("SELECT (.+) FROM products").
		WillReturnRows(rows)

	products, err := repo.ListProducts(ctx, models.ProductFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if len(products[0].Images) != 2 || len(products[0].Sizes) != 2 {
		t.Errorf("expected decoded JSON columns, got %+v", products[0])
	}
}

func TestListProducts_AppliesFilters(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()
	bestseller := true

	mock.ExpectQuery("SELECT (.+) FROM products WHERE category = (.+) AND sub_category = (.+) AND bestseller = (.+)").
		WithArgs("Men", "Topwear", true).
		WillReturnRows(sqlmock.NewRows(productColumns()))

	_, err := repo.ListProducts(ctx, models.ProductFilter{
		Category:    "Men",
		SubCategory: "Topwear",
		Bestseller:  &bestseller,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteProduct_NotFound(t *testing.T) {
	repo, mock, db := newTestProductRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM products").
		WithArgs("ghost").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteProduct(ctx, "ghost")
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}
