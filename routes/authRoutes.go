package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/controllers"
)

func AuthRoutes(server *gin.Engine) {
	auth := server.Group("/auth")
	{
		auth.POST("/login", controllers.Login)
		auth.POST("/register", controllers.Register)
		auth.POST("/logout", controllers.Logout)
		auth.GET("/me", controllers.GetMe)
	}
}
