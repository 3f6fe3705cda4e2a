package models

import "time"

// Role values allowed for a user account.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// CartData is the cart snapshot stored on the user record.
// It maps a product identifier to a size → quantity mapping,
// e.g. {"<product-id>": {"M": 2, "L": 1}}.
type CartData map[string]map[string]int

// Quantity returns the quantity of the given product/size pair,
// or zero if the pair is not present in the cart.
func (c CartData) Quantity(productID, size string) int {
	if c == nil {
		return 0
	}
	return c[productID][size]
}

// Set stores the quantity for the given product/size pair. A quantity of
// zero or less removes the pair; a product with no remaining sizes is
// removed entirely.
func (c CartData) Set(productID, size string, quantity int) {
	if quantity <= 0 {
		if sizes, ok := c[productID]; ok {
			delete(sizes, size)
			if len(sizes) == 0 {
				delete(c, productID)
			}
		}
		return
	}

	if c[productID] == nil {
		c[productID] = make(map[string]int)
	}
	c[productID][size] = quantity
}

// User represents a storefront account used for authentication and
// authorization. Sensitive fields must never be exposed outside trusted
// boundaries.
type User struct {
	// UserID is the store-assigned unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID string `json:"-"`

	// Name is the display name of the user
	// (2–50 characters, letters, digits and spaces only).
	Name string `json:"name"`

	// Email is the unique, lowercased account email.
	// Used during authentication.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a hash, never plaintext.
	// It is never serialized to JSON.
	PasswordHash string `json:"-"`

	// Role is either RoleUser or RoleAdmin. Defaults to RoleUser.
	Role string `json:"role"`

	// CartData is the user's cart snapshot.
	CartData CartData `json:"cartData"`

	// CreatedAt is the timestamp when the user account was created.
	// Used for auditing and lifecycle management.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification of the record.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
