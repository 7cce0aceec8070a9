package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/controllers"
)

func StoreRoutes(server *gin.Engine) {
	server.GET("/products", controllers.GetProducts)
	server.GET("/products/category/:slug", controllers.GetProductsByCategory)
	server.GET("/products/:slug", controllers.GetProductBySlug)
	server.GET("/services", controllers.GetServices)
	server.GET("/services/:slug", controllers.GetServiceBySlug)
	server.GET("/blogs", controllers.GetBlogs)
	server.GET("/blogs/:slug", controllers.GetBlogBySlug)
}
