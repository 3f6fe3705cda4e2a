package models

import "time"

// Order status values as they progress through fulfilment.
const (
	StatusOrderPlaced    = "Order Placed"
	StatusPacking        = "Packing"
	StatusShipped        = "Shipped"
	StatusOutForDelivery = "Out for delivery"
	StatusDelivered      = "Delivered"
)

// OrderItem is a single line of an order: a product in a given size and
// quantity, with the unit price captured at purchase time.
type OrderItem struct {
	ProductID string `json:"_id"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
	Price     int64  `json:"price"`
}

// Address is the delivery address attached to an order.
type Address struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipcode"`
	Country   string `json:"country"`
	Phone     string `json:"phone"`
}

// Order represents a placed order. Amount is stored in cents.
type Order struct {
	// OrderID is the store-assigned unique identifier of the order.
	OrderID string `json:"_id"`

	// UserID is the identifier of the account that placed the order.
	UserID string `json:"userId"`

	// Items lists the ordered products.
	Items []OrderItem `json:"items"`

	// Amount is the order total in cents.
	Amount int64 `json:"amount"`

	// Address is the delivery address.
	Address Address `json:"address"`

	// Status is one of the Status* constants. New orders start as
	// StatusOrderPlaced.
	Status string `json:"status"`

	// PaymentMethod records how the order is paid (e.g. "COD", "Stripe").
	PaymentMethod string `json:"paymentMethod"`

	// Paid reports whether the payment has been captured.
	Paid bool `json:"payment"`

	// PlacedAt is the timestamp when the order was placed.
	PlacedAt time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Order model.
func (o Order) TableName() string {
	return "orders"
}
