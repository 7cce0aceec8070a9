package models

// Product is a read-only copy of a backend catalog record. The last network
// response wins; no client-side invariants are enforced.
type Product struct {
	ID              int      `json:"id"`
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	Price           float64  `json:"price"`
	DiscountedPrice *float64 `json:"discounted_price,omitempty"`
	StockQuantity   int      `json:"stock_quantity"`
	InStock         bool     `json:"in_stock"`
	CategoryID      int      `json:"category_id"`
	ImageURL        string   `json:"image_url,omitempty"`
	Image2URL       string   `json:"image2_url,omitempty"`
	Image3URL       string   `json:"image3_url,omitempty"`
	Image4URL       string   `json:"image4_url,omitempty"`
	Promo           bool     `json:"promo"`
	Rating          float64  `json:"rating,omitempty"`
	NumRatings      int      `json:"num_ratings,omitempty"`
	Slug            string   `json:"slug"`
	Features        []string `json:"features,omitempty"`
	Materials       []string `json:"materials,omitempty"`
	SKU             string   `json:"sku,omitempty"`
	CategoryName    string   `json:"category_name,omitempty"`
	SubcategoryID   *int     `json:"subcategory_id,omitempty"`
	SubcategoryName string   `json:"subcategory_name,omitempty"`
}

// UnitPrice is the price a cart line pays: the discounted price when one is
// set, the list price otherwise.
func (p Product) UnitPrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

type Category struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	Slug          string        `json:"slug"`
	Subcategories []SubCategory `json:"subcategories,omitempty"`
}

type SubCategory struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	CategoryID int    `json:"category_id"`
	Slug       string `json:"slug"`
}
