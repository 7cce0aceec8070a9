package stores

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryCartRepository keeps carts in a map, standing in for the MySQL-backed
// repository in tests.
type memoryCartRepository struct {
	carts map[string][]models.CartItem
}

func newMemoryCartRepository() *memoryCartRepository {
	return &memoryCartRepository{carts: make(map[string][]models.CartItem)}
}

func (r *memoryCartRepository) Load(cartID string) ([]models.CartItem, error) {
	return r.carts[cartID], nil
}

func (r *memoryCartRepository) Save(cartID string, items []models.CartItem) error {
	r.carts[cartID] = items
	return nil
}

func settingsBackend(t *testing.T, body string) *SettingsStore {
	t.Helper()
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
	t.Cleanup(backend.Close)
	return NewSettingsStore(api.NewClient(backend.URL), nil)
}

func testCartStore(t *testing.T) *CartStore {
	settings := settingsBackend(t, `{"shipping_cost": 12, "free_shipping_threshold": 100, "tax_rate": 19, "currency": "TND"}`)
	return NewCartStore(newMemoryCartRepository(), settings)
}

func floatPtr(v float64) *float64 { return &v }

func TestAddItemMergesSameProduct(t *testing.T) {
	store := testCartStore(t)
	drill := models.Product{ID: 1, Name: "Perceuse", Price: 50}

	_, err := store.AddItem("cart-1", drill, 2)
	require.NoError(t, err)
	items, err := store.AddItem("cart-1", drill, 3)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestAddItemClampsQuantityToOne(t *testing.T) {
	store := testCartStore(t)

	items, err := store.AddItem("cart-1", models.Product{ID: 1, Price: 10}, 0)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestUpdateQuantityZeroRemovesLine(t *testing.T) {
	store := testCartStore(t)
	_, err := store.AddItem("cart-1", models.Product{ID: 1, Price: 10}, 2)
	require.NoError(t, err)
	_, err = store.AddItem("cart-1", models.Product{ID: 2, Price: 20}, 1)
	require.NoError(t, err)

	items, err := store.UpdateQuantity("cart-1", 1, 0)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ID)

	totals := store.Totals(context.Background(), "cart-1")
	assert.Equal(t, 1, totals.ItemCount)
	assert.Equal(t, 20.0, totals.Subtotal)
}

func TestTotalsUseDiscountedPrice(t *testing.T) {
	store := testCartStore(t)
	_, err := store.AddItem("cart-1", models.Product{
		ID:              1,
		Price:           100,
		DiscountedPrice: floatPtr(80),
	}, 1)
	require.NoError(t, err)

	totals := store.Totals(context.Background(), "cart-1")
	assert.Equal(t, 80.0, totals.Subtotal)
}

func TestShippingRules(t *testing.T) {
	store := testCartStore(t)
	ctx := context.Background()

	// Empty cart ships for nothing.
	totals := store.TotalsFor(ctx, nil)
	assert.Equal(t, 0.0, totals.ShippingCost)

	// Below the threshold the flat cost applies.
	totals = store.TotalsFor(ctx, []models.CartItem{
		{Product: models.Product{ID: 1, Price: 40}, Quantity: 1},
	})
	assert.Equal(t, 12.0, totals.ShippingCost)

	// At the threshold shipping is free.
	totals = store.TotalsFor(ctx, []models.CartItem{
		{Product: models.Product{ID: 1, Price: 50}, Quantity: 2},
	})
	assert.Equal(t, 0.0, totals.ShippingCost)
}

func TestTotalsNormalizeTaxRate(t *testing.T) {
	store := testCartStore(t)

	// The backend stores 19; totals carry the fraction.
	totals := store.TotalsFor(context.Background(), nil)
	assert.InDelta(t, 0.19, totals.TaxRate, 1e-9)
	assert.Equal(t, "TND", totals.Currency)
}

func TestSettingsFallBackToDefaultsOnFetchFailure(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(backend.Close)

	settings := NewSettingsStore(api.NewClient(backend.URL), nil)
	current := settings.Current(context.Background())

	assert.Equal(t, 12.0, current.ShippingCost)
	assert.Equal(t, 100.0, current.FreeShippingThreshold)
	assert.InDelta(t, 0.19, current.TaxRate, 1e-9)
}
