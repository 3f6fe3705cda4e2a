package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// orderRepository is the PostgreSQL-backed implementation of
// [OrderRepository]. Order lines and the delivery address are stored as
// JSONB documents; they are written once at placement and never updated,
// only the fulfilment status changes afterwards.
type orderRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOrderRepository constructs an [OrderRepository] backed by the provided
// database connection and logger.
func NewOrderRepository(db *DB, logger *logger.Logger) OrderRepository {
	logger.Debug().Msg("creating order repository")
	return &orderRepository{
		db:     db,
		logger: logger,
	}
}

// CreateOrder persists a new order and returns it with the store-assigned
// OrderID and PlacedAt populated.
func (r *orderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	log := logger.FromContext(ctx)

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		return models.Order{}, fmt.Errorf("error encoding order items: %w", err)
	}
	addressJSON, err := json.Marshal(order.Address)
	if err != nil {
		return models.Order{}, fmt.Errorf("error encoding order address: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createOrder,
		order.UserID, itemsJSON, order.Amount, addressJSON,
		order.Status, order.PaymentMethod, order.Paid)

	if err := row.Scan(&order.OrderID, &order.PlacedAt); err != nil {
		log.Err(err).Str("func", "*orderRepository.CreateOrder").Msg("error: order was not created")
		return models.Order{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return order, nil
}

// ListUserOrders returns every order placed by one user, newest first.
func (r *orderRepository) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserOrders, userID)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListUserOrders").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// ListAllOrders returns every order in the store, newest first.
func (r *orderRepository) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listAllOrders)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.ListAllOrders").Msg("error: query failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return collectOrders(rows)
}

// UpdateOrderStatus sets the fulfilment status of an order.
//
// Error handling:
//   - Zero rows affected → [ErrOrderNotFound].
func (r *orderRepository) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, updateOrderStatus, orderID, status)
	if err != nil {
		log.Err(err).Str("func", "*orderRepository.UpdateOrderStatus").Msg("error: status was not updated")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

// rowScanner is the subset of *sql.Rows used by collectOrders.
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

// collectOrders scans all order rows, decoding the JSONB item and address
// columns.
func collectOrders(rows rowScanner) ([]models.Order, error) {
	orders := make([]models.Order, 0)

	for rows.Next() {
		var order models.Order
		var itemsJSON, addressJSON []byte

		if err := rows.Scan(&order.OrderID, &order.UserID, &itemsJSON, &order.Amount, &addressJSON,
			&order.Status, &order.PaymentMethod, &order.Paid, &order.PlacedAt); err != nil {
			return nil, fmt.Errorf("unexpected DB error: %w", err)
		}

		if err := json.Unmarshal(itemsJSON, &order.Items); err != nil {
			return nil, fmt.Errorf("error decoding order items: %w", err)
		}
		if err := json.Unmarshal(addressJSON, &order.Address); err != nil {
			return nil, fmt.Errorf("error decoding order address: %w", err)
		}

		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected DB error: %w", err)
	}

	return orders, nil
}
