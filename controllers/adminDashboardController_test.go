package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dashboard fans four backend fetches out across goroutines sharing one
// bound caller; every response here carries a Set-Cookie so the concurrent
// relay path is exercised on each run.
func TestAdminGetDashboardCountsConcurrentFetches(t *testing.T) {
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "Bearer refreshed", Path: "/"})
		switch r.URL.Path {
		case "/vetrine/products":
			w.Write([]byte(`[{"id": 1}, {"id": 2}, {"id": 3}]`))
		case "/vetrine/orders":
			w.Write([]byte(`[{"id": 1, "status": "pending"}, {"id": 2, "status": "delivered"}]`))
		case "/quotations":
			w.Write([]byte(`[{"id": 1, "status": "pending"}]`))
		case "/service/":
			w.Write([]byte(`[{"id": 1}, {"id": 2}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(backend.Close)
	Init(Deps{Backend: api.NewClient(backend.URL)})

	router := gin.New()
	router.GET("/admin/dashboard", AdminGetDashboard)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]int
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 3, body["products"])
	assert.Equal(t, 2, body["orders"])
	assert.Equal(t, 1, body["pendingOrders"])
	assert.Equal(t, 1, body["quotations"])
	assert.Equal(t, 2, body["services"])

	// One cookie per completed backend call made it back to the browser.
	assert.Len(t, recorder.Result().Cookies(), 4)
}

func TestAdminGetDashboardToleratesPartialFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/vetrine/products" {
			w.Write([]byte(`[{"id": 1}]`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(backend.Close)
	Init(Deps{Backend: api.NewClient(backend.URL)})

	router := gin.New()
	router.GET("/admin/dashboard", AdminGetDashboard)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]int
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, 1, body["products"])
	assert.Equal(t, 0, body["orders"])
}
