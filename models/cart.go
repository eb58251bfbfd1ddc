package models

import (
	"time"

	"gorm.io/datatypes"
)

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"-"`
	UserEmail string     `gorm:"uniqueIndex" json:"userEmail"` // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	Total     float64    `json:"total"` // Always sum(price*quantity) over Items
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type CartItem struct {
	ID     uint `gorm:"primaryKey" json:"-"`
	CartID uint `gorm:"index" json:"-"`
	// Product snapshot taken at add time. Later catalog edits do not touch it.
	ProductID     string                              `json:"productId"`
	Name          string                              `json:"name"`
	Price         float64                             `json:"price"`
	Image         string                              `json:"image"`
	Quantity      int                                 `json:"quantity"`
	Customization datatypes.JSONType[map[string]string] `json:"customization"`
	AddedAt       time.Time                           `json:"addedAt"`
}

// ComputeTotal sums price*quantity over the given items.
func ComputeTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}
