package models

// StoreSettings is the backend's singleton settings record. TaxRate is kept
// as a fraction (0.19, not 19) once normalized by the settings store.
type StoreSettings struct {
	ID                    int     `json:"id,omitempty"`
	StoreName             string  `json:"store_name"`
	Email                 string  `json:"email"`
	Phone                 string  `json:"phone"`
	Address               string  `json:"address"`
	ShippingCost          float64 `json:"shipping_cost"`
	FreeShippingThreshold float64 `json:"free_shipping_threshold"`
	TaxRate               float64 `json:"tax_rate"`
	Currency              string  `json:"currency"`
}

// SettingsUpdate carries the admin settings form; pointers so omitted fields
// stay untouched on the backend.
type SettingsUpdate struct {
	StoreName             *string  `json:"store_name,omitempty"`
	Email                 *string  `json:"email,omitempty"`
	Phone                 *string  `json:"phone,omitempty"`
	Address               *string  `json:"address,omitempty"`
	ShippingCost          *float64 `json:"shipping_cost,omitempty"`
	FreeShippingThreshold *float64 `json:"free_shipping_threshold,omitempty"`
	TaxRate               *float64 `json:"tax_rate,omitempty"`
	Currency              *string  `json:"currency,omitempty"`
}
