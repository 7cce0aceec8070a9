package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to the Maint storefront gateway ❤️. Enjoy seamless interaction with this API.

The following are the endpoints for this gateway:

AUTH
- POST "/auth/login" - Access user account
- POST "/auth/register" - Create user account
- POST "/auth/logout" - End user session
- GET "/auth/me" - Current user

STORE
- GET "/products" - Get all products
- GET "/products/:slug" - Get product by slug
- GET "/products/category/:slug" - Get products for a category
- GET "/services" - Get all services
- GET "/services/:slug" - Get service by slug
- GET "/blogs" - Get all articles
- GET "/blogs/:slug" - Get article by slug

CART
- GET "/cart" - Get cart contents and totals
- POST "/cart/items" - Add a product to the cart
- PUT "/cart/items/:productId" - Change an item quantity
- DELETE "/cart/items/:productId" - Remove an item
- DELETE "/cart" - Empty the cart
- POST "/checkout" - Place an order
- GET "/orders/code/:code" - Look an order up by its code

DEVIS
- GET "/account/devis" - List quotation requests
- GET "/account/devis/:id" - Get a quotation request
- POST "/account/devis" - Submit a quotation request

ADMIN
- "/admin/..." - Back-office CRUD for products, categories, subcategories,
  services, orders, articles, suppliers, freelancers, settings and media`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
