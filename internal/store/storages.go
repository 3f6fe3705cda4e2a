package store

import (
	"context"
	"fmt"

	"github.com/AdityaKanwar22/ShopSphere/internal/config"
	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
)

// Storages bundles every repository behind one constructor so that the
// application wires a single value through the service layer.
type Storages struct {
	UserRepository    UserRepository
	ProductRepository ProductRepository
	OrderRepository   OrderRepository

	db *DB
}

// NewStorages connects to the database, applies embedded migrations, and
// constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, log),
		ProductRepository: NewProductRepository(db, log),
		OrderRepository:   NewOrderRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the shared database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
