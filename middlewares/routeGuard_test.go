package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func guardedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RouteGuard())
	handler := func(ctx *gin.Context) { ctx.Status(http.StatusOK) }
	router.GET("/", handler)
	router.GET("/login", handler)
	router.GET("/account/devis", handler)
	router.GET("/checkout", handler)
	router.GET("/admin/products", handler)
	return router
}

func perform(router *gin.Engine, path string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func tokenCookie(value string) *http.Cookie {
	return &http.Cookie{Name: "access_token", Value: value}
}

func roleCookie(role string) *http.Cookie {
	return &http.Cookie{Name: "user_role", Value: role}
}

func TestPublicPathPassesThrough(t *testing.T) {
	resp := perform(guardedRouter(), "/")
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAccountPathRedirectsWithCallback(t *testing.T) {
	resp := perform(guardedRouter(), "/account/devis")

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/login?callbackUrl=%2Faccount%2Fdevis", resp.Header().Get("Location"))
}

func TestCheckoutStaysOpenToGuests(t *testing.T) {
	router := guardedRouter()

	resp := perform(router, "/checkout")
	assert.Equal(t, http.StatusOK, resp.Code)

	resp = perform(router, "/checkout", tokenCookie("Bearer abc"))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestAdminPathRequiresAdminRole(t *testing.T) {
	router := guardedRouter()

	resp := perform(router, "/admin/products")
	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/login", resp.Header().Get("Location"))

	resp = perform(router, "/admin/products", tokenCookie("Bearer abc"), roleCookie("client"))
	assert.Equal(t, http.StatusFound, resp.Code)

	resp = perform(router, "/admin/products", tokenCookie("Bearer abc"), roleCookie("admin"))
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestLoginBouncesAuthenticatedUsers(t *testing.T) {
	resp := perform(guardedRouter(), "/login", tokenCookie("Bearer abc"))

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/account", resp.Header().Get("Location"))
}

func signedToken(t *testing.T, secret, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "client@maint.tn",
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestVerifiedTokenRoleOverridesRoleCookie(t *testing.T) {
	t.Setenv("GUARD_JWT_SECRET", "guard-secret")
	router := guardedRouter()

	// The role claim wins over the client-readable cookie.
	admin := signedToken(t, "guard-secret", "admin")
	resp := perform(router, "/admin/products", tokenCookie("Bearer "+admin), roleCookie("client"))
	assert.Equal(t, http.StatusOK, resp.Code)

	client := signedToken(t, "guard-secret", "client")
	resp = perform(router, "/admin/products", tokenCookie("Bearer "+client), roleCookie("admin"))
	assert.Equal(t, http.StatusFound, resp.Code)
}

func TestForgedTokenCountsAsAbsent(t *testing.T) {
	t.Setenv("GUARD_JWT_SECRET", "guard-secret")
	router := guardedRouter()

	forged := signedToken(t, "wrong-secret", "admin")
	resp := perform(router, "/account/devis", tokenCookie("Bearer "+forged))

	assert.Equal(t, http.StatusFound, resp.Code)
	assert.Equal(t, "/login?callbackUrl=%2Faccount%2Fdevis", resp.Header().Get("Location"))
}
