package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Picture      string    `json:"picture"`
	Provider     string    `json:"provider"` // "google" or "local"
	Role         string    `gorm:"type:VARCHAR(10);default:'user'" json:"role"`
	PasswordHash string    `json:"-"` // local accounts only
	Address      Address   `gorm:"embedded" json:"address"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Address model embedded in User and snapshotted into orders
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
