package stores

import (
	"context"
	"log"

	"github.com/maint-tn/maint-gateway/models"
)

// CartStore holds the per-visitor cart: an ordered list of (product,
// quantity) lines keyed by product id. Every mutation persists immediately;
// totals are derived on each read from the current store settings.
type CartStore struct {
	repo     CartRepository
	settings *SettingsStore
}

func NewCartStore(repo CartRepository, settings *SettingsStore) *CartStore {
	return &CartStore{repo: repo, settings: settings}
}

// Items restores the visitor's saved cart. Load failures come back as an
// empty cart, never an error.
func (s *CartStore) Items(cartID string) []models.CartItem {
	items, err := s.repo.Load(cartID)
	if err != nil {
		log.Println("Failed to load cart:", err)
		return nil
	}
	return items
}

// AddItem merges into an existing line for the same product instead of
// appending a duplicate.
func (s *CartStore) AddItem(cartID string, product models.Product, quantity int) ([]models.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	items := s.Items(cartID)
	merged := false
	for i := range items {
		if items[i].ID == product.ID {
			items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{Product: product, Quantity: quantity})
	}
	return items, s.repo.Save(cartID, items)
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
func (s *CartStore) UpdateQuantity(cartID string, productID, quantity int) ([]models.CartItem, error) {
	if quantity <= 0 {
		return s.RemoveItem(cartID, productID)
	}
	items := s.Items(cartID)
	for i := range items {
		if items[i].ID == productID {
			items[i].Quantity = quantity
		}
	}
	return items, s.repo.Save(cartID, items)
}

func (s *CartStore) RemoveItem(cartID string, productID int) ([]models.CartItem, error) {
	items := s.Items(cartID)
	kept := items[:0]
	for _, item := range items {
		if item.ID != productID {
			kept = append(kept, item)
		}
	}
	return kept, s.repo.Save(cartID, kept)
}

func (s *CartStore) Clear(cartID string) error {
	return s.repo.Save(cartID, nil)
}

func (s *CartStore) Totals(ctx context.Context, cartID string) models.CartTotals {
	return s.TotalsFor(ctx, s.Items(cartID))
}

// TotalsFor derives item count, subtotal, shipping and tax rate for a set of
// lines. Shipping is zero for an empty cart regardless of the threshold, zero
// once the subtotal reaches a positive threshold, and the flat cost otherwise.
func (s *CartStore) TotalsFor(ctx context.Context, items []models.CartItem) models.CartTotals {
	settings := s.settings.Current(ctx)

	totals := models.CartTotals{
		TaxRate:               settings.TaxRate,
		FreeShippingThreshold: settings.FreeShippingThreshold,
		Currency:              settings.Currency,
	}
	for _, item := range items {
		totals.ItemCount += item.Quantity
		totals.Subtotal += item.UnitPrice() * float64(item.Quantity)
	}
	if len(items) > 0 {
		freeShipping := settings.FreeShippingThreshold > 0 && totals.Subtotal >= settings.FreeShippingThreshold
		if !freeShipping {
			totals.ShippingCost = settings.ShippingCost
		}
	}
	return totals
}
