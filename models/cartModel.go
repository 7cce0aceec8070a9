package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CartItem is a catalog product plus the quantity in the visitor's cart.
// Quantity is always at least 1; dropping to zero removes the line.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}

// CartRecord is the gateway-owned persistence row for one visitor's cart: the
// serialized item list keyed by the cart_id cookie. It is the server-side
// counterpart of the browser's local-storage blob, written on every mutation.
type CartRecord struct {
	gorm.Model
	CartID string         `json:"cartId" gorm:"uniqueIndex;size:36"`
	Items  datatypes.JSON `json:"items"`
}

// CartTotals are derived values, recomputed from the current items and store
// settings on every read.
type CartTotals struct {
	ItemCount             int     `json:"item_count"`
	Subtotal              float64 `json:"subtotal"`
	ShippingCost          float64 `json:"shipping_cost"`
	TaxRate               float64 `json:"tax_rate"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold"`
	Currency              string  `json:"currency,omitempty"`
}
