package service

import (
	"context"
	"errors"

	"github.com/AdityaKanwar22/ShopSphere/models"
)

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Mock: store.UserRepository
// ─────────────────────────────────────────────

type mockUserRepository struct {
	createUserFn      func(ctx context.Context, user models.User) (models.User, error)
	findUserByEmailFn func(ctx context.Context, email string) (models.User, error)
	getCartFn         func(ctx context.Context, userID string) (models.CartData, error)
	updateCartFn      func(ctx context.Context, userID string, cart models.CartData) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	if m.findUserByEmailFn != nil {
		return m.findUserByEmailFn(ctx, email)
	}
	return models.User{}, nil
}

func (m *mockUserRepository) GetCart(ctx context.Context, userID string) (models.CartData, error) {
	if m.getCartFn != nil {
		return m.getCartFn(ctx, userID)
	}
	return models.CartData{}, nil
}

func (m *mockUserRepository) UpdateCart(ctx context.Context, userID string, cart models.CartData) error {
	if m.updateCartFn != nil {
		return m.updateCartFn(ctx, userID, cart)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.ProductRepository
// ─────────────────────────────────────────────

type mockProductRepository struct {
	createProductFn func(ctx context.Context, product models.Product) (models.Product, error)
	getProductFn    func(ctx context.Context, productID string) (models.Product, error)
	listProductsFn  func(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	deleteProductFn func(ctx context.Context, productID string) error
}

func (m *mockProductRepository) CreateProduct(ctx context.Context, product models.Product) (models.Product, error) {
	if m.createProductFn != nil {
		return m.createProductFn(ctx, product)
	}
	return product, nil
}

func (m *mockProductRepository) GetProduct(ctx context.Context, productID string) (models.Product, error) {
	if m.getProductFn != nil {
		return m.getProductFn(ctx, productID)
	}
	return models.Product{}, nil
}

func (m *mockProductRepository) ListProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if m.listProductsFn != nil {
		return m.listProductsFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockProductRepository) DeleteProduct(ctx context.Context, productID string) error {
	if m.deleteProductFn != nil {
		return m.deleteProductFn(ctx, productID)
	}
	return nil
}

// ─────────────────────────────────────────────
// Mock: store.OrderRepository
// ─────────────────────────────────────────────

type mockOrderRepository struct {
	createOrderFn       func(ctx context.Context, order models.Order) (models.Order, error)
	listUserOrdersFn    func(ctx context.Context, userID string) ([]models.Order, error)
	listAllOrdersFn     func(ctx context.Context) ([]models.Order, error)
	updateOrderStatusFn func(ctx context.Context, orderID, status string) error
}

func (m *mockOrderRepository) CreateOrder(ctx context.Context, order models.Order) (models.Order, error) {
	if m.createOrderFn != nil {
		return m.createOrderFn(ctx, order)
	}
	return order, nil
}

func (m *mockOrderRepository) ListUserOrders(ctx context.Context, userID string) ([]models.Order, error) {
	if m.listUserOrdersFn != nil {
		return m.listUserOrdersFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockOrderRepository) ListAllOrders(ctx context.Context) ([]models.Order, error) {
	if m.listAllOrdersFn != nil {
		return m.listAllOrdersFn(ctx)
	}
	return nil, nil
}

func (m *mockOrderRepository) UpdateOrderStatus(ctx context.Context, orderID, status string) error {
	if m.updateOrderStatusFn != nil {
		return m.updateOrderStatusFn(ctx, orderID, status)
	}
	return nil
}
