package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/controllers"
)

func DevisRoutes(server *gin.Engine) {
	devis := server.Group("/account/devis")
	{
		devis.GET("", controllers.GetDevisList)
		devis.GET("/:id", controllers.GetDevisByID)
		devis.POST("", controllers.CreateDevis)
		devis.PUT("/:id", controllers.UpdateDevis)
	}
}
