package wishlistControllers

import (
	"net/http"
	"time"

	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddWishlistItemInput struct {
	ProductID string   `json:"productId" binding:"required"`
	Name      string   `json:"name" binding:"required"`
	Price     *float64 `json:"price" binding:"required"`
	Image     string   `json:"image"`
	Category  string   `json:"category"`
}

func callerEmail(c *gin.Context) (string, bool) {
	email := c.GetString(middleware.CtxUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return email, true
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			return
		}

		var wishlist models.Wishlist
		err := db.Preload("Items").Where("user_email = ?", email).First(&wishlist).Error
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusOK, gin.H{"items": []models.WishlistItem{}})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": wishlist.Items})
	}
}

// POST /user/wishlist
func AddWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			return
		}

		var input AddWishlistItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId, name and price are required"})
			return
		}

		var wishlist models.Wishlist
		if err := db.Where("user_email = ?", email).First(&wishlist).Error; err != nil {
			if err != gorm.ErrRecordNotFound {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
				return
			}
			wishlist = models.Wishlist{UserEmail: email}
			if err := db.Create(&wishlist).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wishlist"})
				return
			}
		}

		// Duplicate adds are rejected, not merged
		var existing models.WishlistItem
		err := db.Where("wishlist_id = ? AND product_id = ?", wishlist.WishlistID, input.ProductID).
			First(&existing).Error
		if err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "Product already in wishlist"})
			return
		}
		if err != gorm.ErrRecordNotFound {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist item"})
			return
		}

		item := models.WishlistItem{
			WishlistID: wishlist.WishlistID,
			ProductID:  input.ProductID,
			Name:       input.Name,
			Price:      *input.Price,
			Image:      input.Image,
			Category:   input.Category,
			AddedAt:    time.Now(),
		}
		if err := db.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add wishlist item"})
			return
		}

		c.JSON(http.StatusCreated, item)
	}
}

// DELETE /user/wishlist?product_id=
func RemoveWishlistItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			return
		}

		productID := c.Query("product_id")
		if productID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
			return
		}

		var wishlist models.Wishlist
		if err := db.Where("user_email = ?", email).First(&wishlist).Error; err != nil {
			// No wishlist yet: removal is a no-op
			c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
			return
		}

		if err := db.Where("wishlist_id = ? AND product_id = ?", wishlist.WishlistID, productID).
			Delete(&models.WishlistItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
	}
}
