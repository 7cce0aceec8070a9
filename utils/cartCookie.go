package utils

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	CartCookieName = "cart_id"

	// Carts live as long as a browser's local storage would: effectively
	// until cleared. Six months is the practical horizon.
	cartCookieMaxAge = 60 * 60 * 24 * 180
)

// CartID returns the visitor's cart id, minting and setting a fresh one when
// the cookie is absent.
func CartID(ctx *gin.Context) string {
	if id, err := ctx.Cookie(CartCookieName); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	ctx.SetCookie(CartCookieName, id, cartCookieMaxAge, "/", "", false, true)
	return id
}
