package service

import (
	"context"
	"fmt"

	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/store"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// cartService implements [CartService]. The cart is a snapshot embedded in
// the user record, so every mutation is a read-modify-write of that
// snapshot.
type cartService struct {
	users  store.UserRepository
	logger *logger.Logger
}

// NewCartService constructs a [CartService].
func NewCartService(users store.UserRepository, logger *logger.Logger) CartService {
	logger.Debug().Msg("creating cart service")
	return &cartService{
		users:  users,
		logger: logger,
	}
}

// GetCart returns the user's cart snapshot.
func (s *cartService) GetCart(ctx context.Context, userID string) (models.CartData, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	return s.users.GetCart(ctx, userID)
}

// AddToCart increments the quantity of one product/size pair by one and
// returns the updated snapshot.
func (s *cartService) AddToCart(ctx context.Context, userID, productID, size string) (models.CartData, error) {
	if userID == "" || productID == "" || size == "" {
		return nil, ErrInvalidDataProvided
	}

	cart, err := s.users.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading cart: %w", err)
	}

	cart.Set(productID, size, cart.Quantity(productID, size)+1)

	if err := s.users.UpdateCart(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("error saving cart: %w", err)
	}

	return cart, nil
}

// UpdateCart sets the quantity of one product/size pair and returns the
// updated snapshot. A quantity of zero removes the pair.
//
// Error handling:
//   - Negative quantity → [ErrInvalidDataProvided].
func (s *cartService) UpdateCart(ctx context.Context, userID, productID, size string, quantity int) (models.CartData, error) {
	if userID == "" || productID == "" || size == "" || quantity < 0 {
		return nil, ErrInvalidDataProvided
	}

	cart, err := s.users.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error reading cart: %w", err)
	}

	cart.Set(productID, size, quantity)

	if err := s.users.UpdateCart(ctx, userID, cart); err != nil {
		return nil, fmt.Errorf("error saving cart: %w", err)
	}

	return cart, nil
}
