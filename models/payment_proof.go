package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentProof keeps a registry row per uploaded payment screenshot so admins
// can audit proofs even when the buyer abandons checkout after uploading.
type PaymentProof struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserEmail string    `json:"userEmail" gorm:"index"`
	FileName  string    `json:"fileName" gorm:"not null"`
	FileURL   string    `json:"fileUrl" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

func SavePaymentProof(db *gorm.DB, userEmail, fileName, fileURL string) (*PaymentProof, error) {
	proof := &PaymentProof{
		UserEmail: userEmail,
		FileName:  fileName,
		FileURL:   fileURL,
	}
	if err := db.Create(proof).Error; err != nil {
		return nil, err
	}
	return proof, nil
}

func GetAllPaymentProofs(db *gorm.DB) ([]PaymentProof, error) {
	var proofs []PaymentProof
	if err := db.Order("created_at DESC").Find(&proofs).Error; err != nil {
		return nil, err
	}
	return proofs, nil
}
