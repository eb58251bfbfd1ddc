package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Product struct {
	ID          uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string     `gorm:"not null" json:"name"`
	SKU         string     `gorm:"uniqueIndex;not null" json:"sku"`
	Description string     `json:"description"`
	Price       float64    `gorm:"not null" json:"price"`
	Image       string     `gorm:"not null" json:"image"`
	Categories  []Category `gorm:"many2many:product_categories;" json:"categories"`
	// Customization keys the storefront renders as input fields for this
	// product, e.g. ["recipientName", "eventDate", "venue"].
	CustomFields datatypes.JSONSlice[string] `json:"customFields"`
	Stock        int                         `json:"stock"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
	DeletedAt    gorm.DeletedAt              `gorm:"index" json:"-"`
}
