package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/controllers"
)

func AdminRoutes(server *gin.Engine) {
	admin := server.Group("/admin")
	{
		admin.GET("/dashboard", controllers.AdminGetDashboard)

		admin.GET("/products", controllers.AdminGetProducts)
		admin.GET("/products/:id", controllers.AdminGetProduct)
		admin.POST("/products", controllers.AdminCreateProduct)
		admin.PUT("/products/:id", controllers.AdminUpdateProduct)
		admin.DELETE("/products/:id", controllers.AdminDeleteProduct)

		admin.GET("/categories", controllers.AdminGetCategories)
		admin.GET("/categories/:id", controllers.AdminGetCategory)
		admin.POST("/categories", controllers.AdminCreateCategory)
		admin.PUT("/categories/:id", controllers.AdminUpdateCategory)
		admin.DELETE("/categories/:id", controllers.AdminDeleteCategory)

		admin.GET("/subcategories", controllers.AdminGetSubcategories)
		admin.GET("/subcategories/:id", controllers.AdminGetSubcategory)
		admin.POST("/subcategories", controllers.AdminCreateSubcategory)
		admin.PUT("/subcategories/:id", controllers.AdminUpdateSubcategory)
		admin.DELETE("/subcategories/:id", controllers.AdminDeleteSubcategory)

		admin.GET("/services", controllers.AdminGetServices)
		admin.GET("/services/:id", controllers.AdminGetService)
		admin.POST("/services", controllers.AdminCreateService)
		admin.PUT("/services/:id", controllers.AdminUpdateService)
		admin.DELETE("/services/:id", controllers.AdminDeleteService)

		admin.GET("/service-categories", controllers.AdminGetServiceCategories)
		admin.POST("/service-categories", controllers.AdminCreateServiceCategory)
		admin.DELETE("/service-categories/:id", controllers.AdminDeleteServiceCategory)

		admin.GET("/orders", controllers.AdminGetOrders)
		admin.GET("/orders/:id", controllers.AdminGetOrder)
		admin.PUT("/orders/:id/status", controllers.AdminUpdateOrderStatus)
		admin.DELETE("/orders/:id", controllers.AdminDeleteOrder)

		admin.GET("/articles", controllers.AdminGetArticles)
		admin.GET("/articles/:id", controllers.AdminGetArticle)
		admin.POST("/articles", controllers.AdminCreateArticle)
		admin.PUT("/articles/:id", controllers.AdminUpdateArticle)
		admin.DELETE("/articles/:id", controllers.AdminDeleteArticle)

		admin.GET("/fournisseurs", controllers.AdminGetFournisseurs)
		admin.GET("/fournisseurs/:id", controllers.AdminGetFournisseur)
		admin.POST("/fournisseurs", controllers.AdminCreateFournisseur)
		admin.PUT("/fournisseurs/:id", controllers.AdminUpdateFournisseur)
		admin.DELETE("/fournisseurs/:id", controllers.AdminDeleteFournisseur)

		admin.GET("/freelancers", controllers.AdminGetFreelancers)
		admin.GET("/freelancers/:id", controllers.AdminGetFreelancer)
		admin.POST("/freelancers", controllers.AdminCreateFreelancer)
		admin.PUT("/freelancers/:id", controllers.AdminUpdateFreelancer)
		admin.DELETE("/freelancers/:id", controllers.AdminDeleteFreelancer)

		admin.GET("/settings", controllers.AdminGetSettings)
		admin.PUT("/settings", controllers.AdminUpdateSettings)

		admin.POST("/media", controllers.AdminUploadMedia)
	}
}
