package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/controllers"
)

func CartRoutes(server *gin.Engine) {
	server.GET("/cart", controllers.GetCart)
	server.POST("/cart/items", controllers.AddToCart)
	server.PUT("/cart/items/:productId", controllers.UpdateCartItem)
	server.DELETE("/cart/items/:productId", controllers.RemoveCartItem)
	server.DELETE("/cart", controllers.ClearCart)
	server.POST("/checkout", controllers.Checkout)
	server.GET("/orders/code/:code", controllers.GetOrderByCode)
}
