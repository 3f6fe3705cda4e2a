package models

import "time"

// Product represents a catalog item offered by the storefront.
// Prices are stored in the smallest currency unit (cents) to avoid
// floating-point arithmetic on money.
type Product struct {
	// ProductID is the store-assigned unique identifier of the product.
	ProductID string `json:"_id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// Description is the long-form product description shown on the
	// product page.
	Description string `json:"description"`

	// Price is the unit price in cents.
	Price int64 `json:"price"`

	// Images holds the CDN URLs of the product images.
	Images []string `json:"image"`

	// Category is the top-level catalog category (e.g. "Men", "Women").
	Category string `json:"category"`

	// SubCategory is the second-level catalog category
	// (e.g. "Topwear", "Winterwear").
	SubCategory string `json:"subCategory"`

	// Sizes lists the sizes the product is available in.
	Sizes []string `json:"sizes"`

	// Bestseller marks products surfaced on the storefront landing page.
	Bestseller bool `json:"bestseller"`

	// CreatedAt is the timestamp when the product was added to the catalog.
	CreatedAt time.Time `json:"date"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// ProductFilter restricts a catalog listing. Zero-valued fields are
// ignored, so the empty filter returns the whole catalog.
type ProductFilter struct {
	Category    string
	SubCategory string
	Bestseller  *bool
}
