package service

import (
	"context"

	"github.com/AdityaKanwar22/ShopSphere/models"
)

// AuthService covers account registration, credential verification and
// session token issuance.
type AuthService interface {
	// Register creates a new account with a hashed password and an empty
	// cart. Returns store.ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, name, email, password string) (models.User, error)

	// Login verifies the email/password pair against the stored account.
	// Returns store.ErrNoUserWasFound for an unknown email and
	// ErrWrongPassword for a bad password.
	Login(ctx context.Context, email, password string) (models.User, error)

	// AdminLogin verifies the pair against the configured administrator
	// credentials. Returns ErrInvalidAdminCredentials on any mismatch.
	AdminLogin(ctx context.Context, email, password string) error

	// CreateToken issues a signed session token for a regular user.
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// CreateAdminToken issues a signed session token carrying the admin
	// role.
	CreateAdminToken(ctx context.Context) (models.Token, error)

	// ParseToken validates a signed token string and returns its claims.
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CatalogService covers product catalog management and browsing.
type CatalogService interface {
	// AddProduct persists a new catalog item.
	AddProduct(ctx context.Context, product models.Product) (models.Product, error)

	// GetProduct returns a single catalog item.
	GetProduct(ctx context.Context, productID string) (models.Product, error)

	// ListProducts returns the catalog items matching the filter.
	ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)

	// RemoveProduct deletes a catalog item.
	RemoveProduct(ctx context.Context, productID string) error
}

// CartService covers the per-user cart snapshot.
type CartService interface {
	// GetCart returns the user's cart snapshot.
	GetCart(ctx context.Context, userID string) (models.CartData, error)

	// AddToCart increments the quantity of one product/size pair by one.
	AddToCart(ctx context.Context, userID, productID, size string) (models.CartData, error)

	// UpdateCart sets the quantity of one product/size pair. Zero removes
	// the pair.
	UpdateCart(ctx context.Context, userID, productID, size string, quantity int) (models.CartData, error)
}

// OrderService covers order placement and fulfilment.
type OrderService interface {
	// PlaceOrder creates an order for the user and clears their cart.
	PlaceOrder(ctx context.Context, userID string, items []models.OrderItem, amount int64, address models.Address) (models.Order, error)

	// ListUserOrders returns all orders of one user, newest first.
	ListUserOrders(ctx context.Context, userID string) ([]models.Order, error)

	// ListAllOrders returns every order in the store, newest first.
	ListAllOrders(ctx context.Context) ([]models.Order, error)

	// UpdateOrderStatus sets the fulfilment status of an order. Returns
	// ErrInvalidOrderStatus for an unknown status value.
	UpdateOrderStatus(ctx context.Context, orderID, status string) error
}
