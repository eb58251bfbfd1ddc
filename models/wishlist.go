package models

import "time"

type Wishlist struct {
	WishlistID uint           `gorm:"primaryKey" json:"-"`
	UserEmail  string         `gorm:"uniqueIndex" json:"userEmail"` // ONE wishlist per user
	Items      []WishlistItem `gorm:"foreignKey:WishlistID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

type WishlistItem struct {
	ID         uint      `gorm:"primaryKey" json:"-"`
	WishlistID uint      `gorm:"index" json:"-"`
	ProductID  string    `json:"productId"`
	Name       string    `json:"name"`
	Price      float64   `json:"price"`
	Image      string    `json:"image"`
	Category   string    `json:"category"`
	AddedAt    time.Time `json:"addedAt"`
}
