package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRouterFor(t *testing.T, handler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(handler)
	t.Cleanup(backend.Close)
	Init(Deps{Backend: api.NewClient(backend.URL)})

	router := gin.New()
	router.GET("/admin/categories", AdminGetCategories)
	router.DELETE("/admin/categories/:id", AdminDeleteCategory)
	return router
}

func TestAdminGetCategoriesFiltersBySearch(t *testing.T) {
	router := adminRouterFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[
			{"id": 1, "name": "Plomberie", "description": "Tuyaux et raccords"},
			{"id": 2, "name": "Outillage", "description": "Outils a main"}
		]`))
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/categories?search=plomb", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	var body struct {
		Categories []models.Category `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Categories, 1)
	assert.Equal(t, "Plomberie", body.Categories[0].Name)

	// The cache keeps the unfiltered rows.
	assert.Len(t, categoryCache.snapshot(), 2)
}

func TestAdminDeleteCategoryRemovesRowDespiteBackendFailure(t *testing.T) {
	router := adminRouterFor(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			w.Write([]byte(`[{"id": 1, "name": "Plomberie"}, {"id": 2, "name": "Outillage"}]`))
		case http.MethodDelete:
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"detail": "delete failed"}`))
		}
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/categories", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/admin/categories/1", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Category removed from list.", body["message"])
	assert.Equal(t, "delete failed", body["notice"])

	// The row is gone from the cached list even though the backend refused.
	rows := categoryCache.snapshot()
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].ID)
}

func TestAdminDeleteCategorySucceeds(t *testing.T) {
	router := adminRouterFor(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.Write([]byte(`[{"id": 1, "name": "Plomberie"}]`))
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/admin/categories/1", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Category deleted successfully.", body["message"])
}

func TestAdminDeleteCategoryRejectsBadID(t *testing.T) {
	router := adminRouterFor(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("an invalid id must not reach the backend")
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodDelete, "/admin/categories/abc", nil))

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
