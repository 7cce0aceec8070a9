package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsBackendDetail(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail": "Email already registered"}`))
	}))
	defer backend.Close()

	err := NewClient(backend.URL).Anonymous().Get("/auth/register", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "Email already registered", apiErr.Error())
}

func TestGetFallsBackToGenericMessage(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream blew up"))
	}))
	defer backend.Close()

	err := NewClient(backend.URL).Anonymous().Get("/vetrine/products", nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, GenericErrorMessage, apiErr.Error())
}

func TestTransportFailureIsGeneric(t *testing.T) {
	err := NewClient("http://127.0.0.1:1").Anonymous().Get("/vetrine/products", nil)
	require.Error(t, err)
	assert.Equal(t, GenericErrorMessage, err.Error())
}

func TestNoContentLeavesOutputZero(t *testing.T) {
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer backend.Close()

	var out struct {
		Name string `json:"name"`
	}
	err := NewClient(backend.URL).Anonymous().Delete("/vetrine/products/7", &out)
	require.NoError(t, err)
	assert.Empty(t, out.Name)
}

func TestForRequestForwardsAndRelaysCookies(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seenCookie string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie("access_token"); err == nil {
			seenCookie = cookie.Value
		}
		http.SetCookie(w, &http.Cookie{Name: "access_token", Value: "Bearer refreshed", Path: "/"})
		w.Write([]byte(`{}`))
	}))
	defer backend.Close()

	recorder := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(recorder)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	ctx.Request.AddCookie(&http.Cookie{Name: "access_token", Value: "Bearer original"})

	err := NewClient(backend.URL).ForRequest(ctx).Get("/auth/users/me", nil)
	require.NoError(t, err)

	assert.Equal(t, "Bearer original", seenCookie)

	relayed := recorder.Result().Cookies()
	require.Len(t, relayed, 1)
	assert.Equal(t, "access_token", relayed[0].Name)
	assert.Equal(t, "Bearer refreshed", relayed[0].Value)
}

func TestPostFormSendsURLEncodedBody(t *testing.T) {
	var contentType, username string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		r.ParseForm()
		username = r.PostFormValue("username")
		w.Write([]byte(`{"message": "ok"}`))
	}))
	defer backend.Close()

	err := NewClient(backend.URL).Anonymous().PostForm("/auth/token", map[string]string{
		"username": "client@maint.tn",
		"password": "secret",
	}, nil)
	require.NoError(t, err)

	assert.Contains(t, contentType, "application/x-www-form-urlencoded")
	assert.Equal(t, "client@maint.tn", username)
}
