package main

import (
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/maint-tn/maint-gateway/api"
	"github.com/maint-tn/maint-gateway/controllers"
	"github.com/maint-tn/maint-gateway/initializers"
	"github.com/maint-tn/maint-gateway/middlewares"
	"github.com/maint-tn/maint-gateway/routes"
	"github.com/maint-tn/maint-gateway/stores"
)

func init() {
	initializers.LoadEnv()
	initializers.ConnectToDB()
	initializers.SyncDatabase()
	initializers.ConnectToRedis()
}

func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:3005"}
}

func main() {
	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	server.Use(middlewares.RouteGuard())

	backend := api.NewClientFromEnv()
	settings := stores.NewSettingsStore(backend, initializers.Redis)
	cart := stores.NewCartStore(stores.NewGormCartRepository(initializers.DB), settings)
	controllers.Init(controllers.Deps{
		Backend:  backend,
		Settings: settings,
		Cart:     cart,
	})

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server)
	routes.StoreRoutes(server)
	routes.CartRoutes(server)
	routes.DevisRoutes(server)
	routes.AdminRoutes(server)
	server.Run()
}
