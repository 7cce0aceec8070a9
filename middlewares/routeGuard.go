package middlewares

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// Prefixes that require a session. Checkout stays open: guests can
	// place orders, a session only prefills the form.
	authPrefixes = []string{"/account"}
	// Prefixes that additionally require the admin role.
	adminPrefixes = []string{"/admin"}
)

// RouteGuard gates routes ahead of their handlers based on the backend's
// session cookies. Admin prefixes need a token and the admin role, account
// prefixes need a token (the original path survives as callbackUrl), and
// already-authenticated requests are bounced away from login/register.
// Everything else passes through.
func RouteGuard() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		path := ctx.Request.URL.Path
		token, role := sessionFromCookies(ctx)

		if hasAnyPrefix(path, adminPrefixes) {
			if token == "" || role != "admin" {
				redirectTo(ctx, "/login")
				return
			}
		}

		if hasAnyPrefix(path, authPrefixes) {
			if token == "" {
				redirectTo(ctx, "/login?callbackUrl="+url.QueryEscape(path))
				return
			}
		}

		if (path == "/login" || path == "/register") && token != "" {
			redirectTo(ctx, "/account")
			return
		}

		ctx.Next()
	}
}

// sessionFromCookies reads the access_token and role. With GUARD_JWT_SECRET
// set, the token is HS256-verified and the role claim is authoritative; an
// invalid token counts as absent. Without a secret this is the coarse check
// the storefront always did: token presence plus the client-readable
// user_role cookie, with actual validation delegated to the backend.
func sessionFromCookies(ctx *gin.Context) (string, string) {
	raw, err := ctx.Cookie("access_token")
	if err != nil || raw == "" {
		return "", ""
	}
	token := strings.TrimPrefix(raw, "Bearer ")

	if secret := os.Getenv("GUARD_JWT_SECRET"); secret != "" {
		claims := jwt.MapClaims{}
		parsed, parseErr := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(secret), nil
		})
		if parseErr != nil || !parsed.Valid {
			return "", ""
		}
		role, _ := claims["role"].(string)
		return token, role
	}

	role, _ := ctx.Cookie("user_role")
	return token, role
}

func hasAnyPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func redirectTo(ctx *gin.Context, location string) {
	ctx.Redirect(http.StatusFound, location)
	ctx.Abort()
}
