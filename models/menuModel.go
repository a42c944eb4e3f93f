package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// MenuSize is one purchasable variant of a menu item, stored inside
// the item's sizes JSON column.
type MenuSize struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type MenuItem struct {
	gorm.Model
	Name        string         `json:"name" binding:"required"`
	Description string         `json:"description"`
	Category    string         `json:"category" binding:"required"`
	ImageUrl    string         `json:"imageUrl"`
	Sizes       datatypes.JSON `json:"sizes"`
	Available   bool           `json:"available"`
}
