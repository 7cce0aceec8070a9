package stores

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/maint-tn/maint-gateway/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func devisStoreFor(t *testing.T, handler http.HandlerFunc) *DevisStore {
	t.Helper()
	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)
	return NewDevisStore(api.NewClient(backend.URL).Anonymous())
}

func TestListMapsQuotationRecords(t *testing.T) {
	store := devisStoreFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": 12,
			"service_id": 3,
			"service": {"id": 3, "name": "Plomberie"},
			"first_name": "Amine",
			"last_name": "Ben Salah",
			"city": "Tunis",
			"address": "12 Rue de Marseille",
			"phone": "21612345",
			"status": "PENDING",
			"created_at": "2026-08-01T10:00:00",
			"proposals": [{
				"id": 7,
				"price": 150,
				"status": "sent",
				"freelancer": {"id": 4, "first_name": "Karim", "last_name": "Trabelsi", "rating": 4.8}
			}]
		}]`))
	})

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	devis := list[0]
	assert.Equal(t, "12", devis.ID)
	assert.Equal(t, "Plomberie", devis.ServiceType)
	assert.Equal(t, "Plomberie", devis.Title)
	assert.Equal(t, "Tunis, 12 Rue de Marseille", devis.Location)
	assert.Equal(t, "pending", devis.Status)

	require.Len(t, devis.Proposals, 1)
	proposal := devis.Proposals[0]
	assert.Equal(t, "7", proposal.ID)
	assert.Equal(t, "Karim Trabelsi", proposal.Freelancer.Name)
	assert.Equal(t, "4", proposal.Freelancer.ID)
}

func TestMapQuotationFallbacks(t *testing.T) {
	store := devisStoreFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{
			"id": 1,
			"city": "Sfax",
			"status": "pending",
			"proposals": [{"id": 2, "price": 90, "status": "sent"}]
		}]`))
	})

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 1)

	devis := list[0]
	assert.Equal(t, "Service", devis.ServiceType)
	assert.Equal(t, "Demande de devis", devis.Title)
	assert.Equal(t, "Sfax", devis.Location)

	require.Len(t, devis.Proposals, 1)
	assert.Equal(t, "Professional", devis.Proposals[0].Freelancer.Name)
	assert.Equal(t, "Unknown", devis.Proposals[0].Freelancer.ID)
}

func TestGetByIDAbsorbsFailures(t *testing.T) {
	store := devisStoreFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Quotation not found"}`))
	})

	devis, err := store.GetByID("99")
	require.NoError(t, err)
	assert.Nil(t, devis)
}

func TestUpdateNotSupported(t *testing.T) {
	store := devisStoreFor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("update must not reach the backend")
	})

	err := store.Update("5", map[string]any{"status": "cancelled"})
	assert.ErrorIs(t, err, ErrUpdateNotSupported)
}
