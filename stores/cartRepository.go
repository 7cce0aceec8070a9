package stores

import (
	"encoding/json"
	"errors"
	"log"

	"github.com/maint-tn/maint-gateway/models"
	"gorm.io/gorm"
)

// CartRepository persists one serialized item list per visitor cart id.
type CartRepository interface {
	Load(cartID string) ([]models.CartItem, error)
	Save(cartID string, items []models.CartItem) error
}

// GormCartRepository keeps cart blobs in the cart_records table, one row per
// visitor, items as a JSON column.
type GormCartRepository struct {
	db *gorm.DB
}

func NewGormCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

func (r *GormCartRepository) Load(cartID string) ([]models.CartItem, error) {
	var record models.CartRecord
	err := r.db.Where("cart_id = ?", cartID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var items []models.CartItem
	if err := json.Unmarshal(record.Items, &items); err != nil {
		// A corrupt blob loads as an empty cart rather than an error.
		log.Println("Failed to load cart items:", err)
		return nil, nil
	}
	return items, nil
}

func (r *GormCartRepository) Save(cartID string, items []models.CartItem) error {
	if items == nil {
		items = []models.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	var record models.CartRecord
	err = r.db.Where("cart_id = ?", cartID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = models.CartRecord{CartID: cartID, Items: raw}
		return r.db.Create(&record).Error
	}
	if err != nil {
		return err
	}

	record.Items = raw
	return r.db.Save(&record).Error
}
