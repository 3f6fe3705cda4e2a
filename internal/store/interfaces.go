package store

import (
	"context"

	"github.com/AdityaKanwar22/ShopSphere/models"
)

// UserRepository is the data-access contract for storefront accounts and the
// cart snapshot embedded in them.
type UserRepository interface {
	// CreateUser persists a new account and returns it with store-assigned
	// fields populated. Returns ErrEmailAlreadyExists when the email is
	// taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail looks up an account by its normalized email.
	// Returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// GetCart returns the cart snapshot of the given user.
	GetCart(ctx context.Context, userID string) (models.CartData, error)

	// UpdateCart replaces the cart snapshot of the given user.
	UpdateCart(ctx context.Context, userID string, cart models.CartData) error
}

// ProductRepository is the data-access contract for the product catalog.
type ProductRepository interface {
	// CreateProduct persists a new catalog item and returns it with
	// store-assigned fields populated.
	CreateProduct(ctx context.Context, product models.Product) (models.Product, error)

	// GetProduct looks up a single catalog item.
	// Returns ErrProductNotFound when no item matches.
	GetProduct(ctx context.Context, productID string) (models.Product, error)

	// ListProducts returns the catalog items matching the filter, newest
	// first. The zero filter returns the whole catalog.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)

	// DeleteProduct removes a catalog item.
	// Returns ErrProductNotFound when no item matches.
	DeleteProduct(ctx context.Context, productID string) error
}

// OrderRepository is the data-access contract for placed orders.
type OrderRepository interface {
	// CreateOrder persists a new order and returns it with store-assigned
	// fields populated.
	CreateOrder(ctx context.Context, order models.Order) (models.Order, error)

	// ListUserOrders returns all orders of one user, newest first.
	ListUserOrders(ctx context.Context, userID string) ([]models.Order, error)

	// ListAllOrders returns every order in the store, newest first.
	ListAllOrders(ctx context.Context) ([]models.Order, error)

	// UpdateOrderStatus sets the fulfilment status of an order.
	// Returns ErrOrderNotFound when no order matches.
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
}
