package cartControllers

import (
	"net/http"
	"time"

	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	ProductID     string            `json:"productId" binding:"required"`
	Name          string            `json:"name" binding:"required"`
	Price         *float64          `json:"price" binding:"required"`
	Image         string            `json:"image"`
	Quantity      int               `json:"quantity"`
	Customization map[string]string `json:"customization"`
}

type UpdateCartInput struct {
	Action    string `json:"action"` // "clear" empties the cart
	ProductID string `json:"productId"`
	Quantity  *int   `json:"quantity"`
}

// callerEmail pulls the authenticated user's email off the context.
func callerEmail(c *gin.Context) (string, bool) {
	email := c.GetString(middleware.CtxUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return email, true
}

// recomputeTotal re-derives the cart total from its item rows and persists
// it. Must run inside the same transaction as the item mutation so the
// stored total never drifts from the items.
func recomputeTotal(tx *gorm.DB, cartID uint) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return err
	}
	return tx.Model(&models.Cart{}).Where("cart_id = ?", cartID).
		Update("total", models.ComputeTotal(items)).Error
}

// GET /user/cart
func GetCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			return
		}

		var cart models.Cart
		err := db.Preload("Items").Where("user_email = ?", email).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			// Carts are created lazily on first add
			c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total": 0})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total})
	}
}

// POST /user/cart
func AddCartItem(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			return
		}

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId, name and price are required"})
			return
		}
		quantity := input.Quantity
		if quantity <= 0 {
			quantity = 1
		}

		var cart models.Cart
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_email = ?", email).First(&cart).Error; err != nil {
				if err != gorm.ErrRecordNotFound {
					return err
				}
				cart = models.Cart{UserEmail: email}
				if err := tx.Create(&cart).Error; err != nil {
					return err
				}
			}

			var item models.CartItem
			err := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
				First(&item).Error
			switch {
			case err == gorm.ErrRecordNotFound:
				item = models.CartItem{
					CartID:        cart.CartID,
					ProductID:     input.ProductID,
					Name:          input.Name,
					Price:         *input.Price,
					Image:         input.Image,
					Quantity:      quantity,
					Customization: datatypes.NewJSONType(input.Customization),
					AddedAt:       time.Now(),
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
			case err == nil:
				// Same product added again: bump quantity only. The stored
				// price/name/image snapshot stays as it was at first add.
				item.Quantity += quantity
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			default:
				return err
			}

			return recomputeTotal(tx, cart.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		var updated models.Cart
		if err := db.Preload("Items").First(&updated, cart.CartID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": updated.Items, "total": updated.Total})
	}
}

// PUT /user/cart
func UpdateCart(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := callerEmail(c)
		if !ok {
			return
		}

		var input UpdateCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Action == "clear" {
			clearCart(c, db, email)
			return
		}

		if input.ProductID == "" || input.Quantity == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId and quantity are required"})
			return
		}

		var cart models.Cart
		if err := db.Where("user_email = ?", email).First(&cart).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
			return
		}

		var item models.CartItem
		if err := db.Where("cart_id = ? AND product_id = ?", cart.CartID, input.ProductID).
			First(&item).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if *input.Quantity <= 0 {
				// Quantity zero removes the line entirely
				if err := tx.Delete(&item).Error; err != nil {
					return err
				}
			} else {
				item.Quantity = *input.Quantity
				if err := tx.Save(&item).Error; err != nil {
					return err
				}
			}
			return recomputeTotal(tx, cart.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
			return
		}

		var updated models.Cart
		if err := db.Preload("Items").First(&updated, cart.CartID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": updated.Items, "total": updated.Total})
	}
}

func clearCart(c *gin.Context, db *gorm.DB, email string) {
	var cart models.Cart
	if err := db.Where("user_email = ?", email).First(&cart).Error; err != nil {
		// Nothing persisted yet: clearing an absent cart is not an error
		c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total": 0})
		return
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("total", 0).Error
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total": 0})
}

// DELETE /user/cart?product_id=
func RemoveCartItem(db *gorm.DB) gin.HandlerFunc {
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

		var cart models.Cart
		if err := db.Where("user_email = ?", email).First(&cart).Error; err != nil {
			c.JSON(http.StatusOK, gin.H{"items": []models.CartItem{}, "total": 0})
			return
		}

		// Removing an absent line is a no-op, not an error
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("cart_id = ? AND product_id = ?", cart.CartID, productID).
				Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return recomputeTotal(tx, cart.CartID)
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
			return
		}

		var updated models.Cart
		if err := db.Preload("Items").First(&updated, cart.CartID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": updated.Items, "total": updated.Total})
	}
}

// GET /admin/user-cart/:email — admin support view of any user's cart
func GetUserCartForAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.Param("email")
		if email == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "email is required"})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_email = ?", email).First(&cart).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"items": cart.Items, "total": cart.Total})
	}
}
