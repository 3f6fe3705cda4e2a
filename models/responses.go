package models

// Response is the JSON envelope shared by every storefront endpoint.
// Business failures (validation, bad credentials, duplicate email, …) are
// reported with Success=false and a human-readable Message rather than via
// HTTP status codes.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// CSRFTokenResponse is the body of GET /api/csrf-token.
type CSRFTokenResponse struct {
	CSRFToken string `json:"csrfToken"`
}

// CartResponse carries the cart snapshot back to the client.
type CartResponse struct {
	Success  bool     `json:"success"`
	CartData CartData `json:"cartData"`
}

// ProductListResponse carries a catalog listing.
type ProductListResponse struct {
	Success  bool      `json:"success"`
	Products []Product `json:"products"`
}

// ProductResponse carries a single catalog item.
type ProductResponse struct {
	Success bool    `json:"success"`
	Product Product `json:"product"`
}

// OrderListResponse carries a list of orders.
type OrderListResponse struct {
	Success bool    `json:"success"`
	Orders  []Order `json:"orders"`
}
