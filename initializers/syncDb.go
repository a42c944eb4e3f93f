package initializers

import (
	"log"

	"github.com/dewrapsquare/dewrap-api/models"
	"gorm.io/gorm"
)

func SyncDatabase(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.MenuItem{}, &models.OrderRecord{}); err != nil {
		return err
	}
	log.Println("Database synced successfully.")
	return nil
}
