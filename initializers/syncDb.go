package initializers

import (
	"log"

	"github.com/maint-tn/maint-gateway/models"
)

func SyncDatabase() {
	DB.AutoMigrate(&models.CartRecord{})
	log.Println("Database synced successfully.")
}
