package adminController

import (
	"log"
	"net/http"

	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /admin/users
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.User
		if err := db.
			Select("id", "email", "name", "phone", "picture", "provider", "role", "created_at").
			Order("created_at desc").
			Find(&users).Error; err != nil {
			log.Println("❌ Failed to fetch users:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}

		c.JSON(http.StatusOK, users)
	}
}

// GET /admin/payment-proofs
func GetPaymentProofs(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		proofs, err := models.GetAllPaymentProofs(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment proofs"})
			return
		}
		c.JSON(http.StatusOK, proofs)
	}
}
