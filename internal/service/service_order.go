package service

import (
	"context"
	"fmt"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// validStatuses is the set of fulfilment states an order may be moved to.
var validStatuses = map[string]struct{}{
	models.StatusOrderPlaced:    {},
	models.StatusPacking:        {},
	models.StatusShipped:        {},
	models.StatusOutForDelivery: {},
	models.StatusDelivered:      {},
}

// orderService implements [OrderService]. Placing an order also clears the
// user's cart snapshot.
type orderService struct {
	orders store.OrderRepository
	users  store.UserRepository
	logger *logger.Logger
}

// NewOrderService constructs an [OrderService].
func NewOrderService(orders store.OrderRepository, users store.UserRepository, logger *logger.Logger) OrderService {
	logger.Debug().Msg("creating order service")
	return &orderService{
		orders: orders,
		users:  users,
		logger: logger,
	}
}

// PlaceOrder creates a cash-on-delivery order for the user and clears their
// cart. A failure to clear the cart does not fail the placed order; it is
// logged and the order is returned.
//
// Error handling:
//   - Empty user or amount ≤ 0 → [ErrInvalidDataProvided].
//   - No items → [ErrEmptyCart].
func (s *orderService) PlaceOrder(ctx context.Context, userID string, items []models.OrderItem, amount int64, address models.Address) (models.Order, error) {
	log := logger.FromContext(ctx)

	if userID == "" || amount <= 0 {
		return models.Order{}, ErrInvalidDataProvided
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	order := models.Order{
		UserID:        userID,
		Items:         items,
		Amount:        amount,
		Address:       address,
		Status:        models.StatusOrderPlaced,
		PaymentMethod: "COD",
		Paid:          false,
	}

	created, err := s.orders.CreateOrder(ctx, order)
	if err != nil {
		return models.Order{}, fmt.Errorf("error creating order: %w", err)
	}

	if err := s.users.UpdateCart(ctx, userID, models.CartData{}); err != nil {
		log.Err(err).
			Str("func", "*orderService.PlaceOrder").
			Str("order_id", created.OrderID).
			Msg("error clearing cart after order placement")
	}

	return created, nil
}

// ListUserOrders returns all orders of one user, newest first.
func (s *orderService) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	return s.orders.ListUserOrders(ctx, userID)
}

// ListAllOrders returns every order in the store, newest first.
func (s *orderService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListAllOrders(ctx)
}

// UpdateOrderStatus sets the fulfilment status of an order.
//
// Error handling:
//   - Unknown status value → [ErrInvalidOrderStatus].
//   - Unknown order → [store.ErrOrderNotFound].
func (s *orderService) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	if orderID == "" {
		return ErrInvalidDataProvided
	}
	if _, ok := validStatuses[status]; !ok {
		return ErrInvalidOrderStatus
	}

	return s.orders.UpdateOrderStatus(ctx, orderID, status)
}
