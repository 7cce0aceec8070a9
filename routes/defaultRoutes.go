package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/controllers"
)

func DefaultRoutes(server *gin.Engine) {
	server.GET("/", controllers.GetHome)
}
