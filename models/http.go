package models

// Typed request contracts for every route. Each request is decoded and
// validated at the HTTP boundary before it reaches handler logic.

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AdminLoginRequest is the body of POST /api/user/admin.
type AdminLoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProductAddRequest is the body of POST /api/product/add.
type ProductAddRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Images      []string `json:"image"`
	Category    string   `json:"category"`
	SubCategory string   `json:"subCategory"`
	Sizes       []string `json:"sizes"`
	Bestseller  bool     `json:"bestseller"`
}

// ProductSingleRequest is the body of POST /api/product/single.
type ProductSingleRequest struct {
	ProductID string `json:"productId"`
}

// ProductRemoveRequest is the body of POST /api/product/remove.
type ProductRemoveRequest struct {
	ProductID string `json:"productId"`
}

// CartAddRequest is the body of POST /api/cart/add.
type CartAddRequest struct {
	ItemID string `json:"itemId"`
	Size   string `json:"size"`
}

// CartUpdateRequest is the body of POST /api/cart/update.
type CartUpdateRequest struct {
	ItemID   string `json:"itemId"`
	Size     string `json:"size"`
	Quantity int    `json:"quantity"`
}

// OrderPlaceRequest is the body of POST /api/order/place.
type OrderPlaceRequest struct {
	Items         []OrderItem `json:"items"`
	Amount        int64       `json:"amount"`
	Address       Address     `json:"address"`
	PaymentMethod string      `json:"paymentMethod"`
}

// OrderStatusRequest is the body of POST /api/order/status.
type OrderStatusRequest struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
