package http

import (
	"context"
	"time"

	"github.com/AdityaKanwar22/ShopSphere/internal/config"
	"github.com/AdityaKanwar22/ShopSphere/internal/logger"
	"github.com/AdityaKanwar22/ShopSphere/internal/service"
	"github.com/AdityaKanwar22/ShopSphere/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerFn         func(ctx context.Context, name, email, password string) (models.User, error)
	loginFn            func(ctx context.Context, email, password string) (models.User, error)
	adminLoginFn       func(ctx context.Context, email, password string) error
	createTokenFn      func(ctx context.Context, user models.User) (models.Token, error)
	createAdminTokenFn func(ctx context.Context) (models.Token, error)
	parseTokenFn       func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	return m.registerFn(ctx, name, email, password)
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	return m.loginFn(ctx, email, password)
}

func (m *mockAuthService) AdminLogin(ctx context.Context, email, password string) error {
	return m.adminLoginFn(ctx, email, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) CreateAdminToken(ctx context.Context) (models.Token, error) {
	return m.createAdminTokenFn(ctx)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// ─────────────────────────────────────────────
// Mock CatalogService
// ─────────────────────────────────────────────

type mockCatalogService struct {
	addProductFn    func(ctx context.Context, product models.Product) (models.Product, error)
	getProductFn    func(ctx context.Context, productID string) (models.Product, error)
	listProductsFn  func(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	removeProductFn func(ctx context.Context, productID string) error
}

func (m *mockCatalogService) AddProduct(ctx context.Context, product models.Product) (models.Product, error) {
	return m.addProductFn(ctx, product)
}

func (m *mockCatalogService) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	return m.getProductFn(ctx, productID)
}

func (m *mockCatalogService) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	return m.listProductsFn(ctx, filter)
}

func (m *mockCatalogService) RemoveProduct(ctx context.Context, productID string) error {
	return m.removeProductFn(ctx, productID)
}

// ─────────────────────────────────────────────
// Mock CartService
// ─────────────────────────────────────────────

type mockCartService struct {
	getCartFn    func(ctx context.Context, userID string) (models.CartData, error)
	addToCartFn  func(ctx context.Context, userID, productID, size string) (models.CartData, error)
	updateCartFn func(ctx context.Context, userID, productID, size string, quantity int) (models.CartData, error)
}

func (m *mockCartService) GetCart(ctx context.Context, userID string) (models.CartData, error) {
	return m.getCartFn(ctx, userID)
}

func (m *mockCartService) AddToCart(ctx context.Context, userID, productID, size string) (models.CartData, error) {
	return m.addToCartFn(ctx, userID, productID, size)
}

func (m *mockCartService) UpdateCart(ctx context.Context, userID, productID, size string, quantity int) (models.CartData, error) {
	return m.updateCartFn(ctx, userID, productID, size, quantity)
}

// ─────────────────────────────────────────────
// Mock OrderService
// ─────────────────────────────────────────────

type mockOrderService struct {
	placeOrderFn        func(ctx context.Context, userID string, items []models.OrderItem, amount int64, address models.Address) (models.Order, error)
	listUserOrdersFn    func(ctx context.Context, userID string) ([]models.Order, error)
	listAllOrdersFn     func(ctx context.Context) ([]models.Order, error)
	updateOrderStatusFn func(ctx context.Context, orderID, status string) error
}

func (m *mockOrderService) PlaceOrder(ctx context.Context, userID string, items []models.OrderItem, amount int64, address models.Address) (models.Order, error) {
	return m.placeOrderFn(ctx, userID, items, amount, address)
}

func (m *mockOrderService) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	return m.listUserOrdersFn(ctx, userID)
}

func (m *mockOrderService) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	return m.listAllOrdersFn(ctx)
}

func (m *mockOrderService) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	return m.updateOrderStatusFn(ctx, orderID, status)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// testConfig returns a development-mode configuration usable in handler
// tests without touching the environment.
func testConfig() config.StructuredConfig {
	return config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "test-sign-key",
			TokenIssuer:      "shopsphere-test",
			TokenDuration:    time.Hour,
			PasswordHashCost: 4,
			CSRFAuthKey:      "01234567890123456789012345678901",
			AdminEmail:       "admin@example.com",
			AdminPassword:    "S3cureAdminPass",
		},
		Server: config.Server{
			HTTPAddress:        ":0",
			Environment:        "development",
			CORSAllowedOrigins: []string{"http://localhost:5173"},
			RequestTimeout:     30 * time.Second,
		},
		RateLimit: config.RateLimit{
			Window:      15 * time.Minute,
			GlobalLimit: 100,
			LoginLimit:  5,
		},
	}
}

// newTestHandler builds a Handler with the given service mocks. Nil mocks
// are left nil; tests only exercise the services they stub.
func newTestHandler(services *service.Services) *Handler {
	return NewHandler(services, testConfig(), logger.Nop())
}
