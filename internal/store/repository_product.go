package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// productRepository is the PostgreSQL-backed implementation of
// [ProductRepository]. Image URLs and size lists are stored as JSONB
// documents; catalog listings are built dynamically with squirrel so that
// category, sub-category and bestseller filters compose freely.
type productRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProductRepository constructs a [ProductRepository] backed by the
// provided database connection and logger.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProduct persists a new catalog item and returns it with the
// store-assigned ProductID and CreatedAt populated.
func (r *productRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	log := logger.FromContext(ctx)

	imagesJSON, err := json.Marshal(product.Images)
	if err != nil {
		return models.Product{}, fmt.Errorf("error encoding product images: %w", err)
	}
	sizesJSON, err := json.Marshal(product.Sizes)
	if err != nil {
		return models.Product{}, fmt.Errorf("error encoding product sizes: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createProduct,
		product.Name, product.Description, product.Price, imagesJSON,
		product.Category, product.SubCategory, sizesJSON, product.Bestseller)

	if err := row.Scan(&product.ProductID, &product.CreatedAt); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("error: product was not created")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// GetProduct retrieves a single catalog item by its identifier.
//
// Error handling:
//   - No matching row → [ErrProductNotFound].
func (r *productRepository) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, getProduct, productID)

	product, err := scanProduct(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("error: scanning error")
		return models.Product{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return product, nil
}

// ListProducts returns catalog items matching the filter, newest first.
// The SELECT is assembled with squirrel; zero-valued filter fields add no
// WHERE clause, so the empty filter lists the whole catalog.
func (r *productRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	log := logger.FromContext(ctx)

	builder := sq.Select(
		"product_id", "name", "description", "price", "images",
		"category", "sub_category", "sizes", "bestseller", "created_at").
		From("products").
		OrderBy("created_at DESC").
		PlaceholderFormat(sq.Dollar)

	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}
	if filter.SubCategory != "" {
		builder = builder.Where(sq.Eq{"sub_category": filter.SubCategory})
	}
	if filter.Bestseller != nil {
		builder = builder.Where(sq.Eq{"bestseller": *filter.Bestseller})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	products := make([]models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}
		products = append(products, product)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return products, nil
}

// DeleteProduct removes a catalog item.
//
// Error handling:
//   - Zero rows affected → [ErrProductNotFound].
func (r *productRepository) DeleteProduct(ctx context.Context, productID string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteProduct, productID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("error: product was not deleted")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	return nil
}

// scanProduct scans one product row, decoding the JSONB image and size
// columns. The scan argument order must match the column order of
// [getProduct] and [ListProducts].
func scanProduct(scan func(dest ...any) error) (models.Product, error) {
	var product models.Product
	var imagesJSON, sizesJSON []byte

	if err := scan(&product.ProductID, &product.Name, &product.Description, &product.Price, &imagesJSON,
		&product.Category, &product.SubCategory, &sizesJSON, &product.Bestseller, &product.CreatedAt); err != nil {
		return models.Product{}, err
	}

	if err := json.Unmarshal(imagesJSON, &product.Images); err != nil {
		return models.Product{}, fmt.Errorf("error decoding product images: %w", err)
	}
	if err := json.Unmarshal(sizesJSON, &product.Sizes); err != nil {
		return models.Product{}, fmt.Errorf("error decoding product sizes: %w", err)
	}

	return product, nil
}
