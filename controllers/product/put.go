package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Memoriestore01/memoriestore-api/config"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// UpdateProduct updates an existing product by ID.
// Accepts the same fields as CreateProduct and an optional "image" file.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		idStr := c.Param("id")
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var product models.Product
		if err := db.Preload("Categories").First(&product, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if v := c.PostForm("name"); v != "" {
			product.Name = v
		}
		if v := c.PostForm("sku"); v != "" && v != product.SKU {
			// SKU moves must not collide with another product
			var other models.Product
			if err := db.Where("sku = ? AND id <> ?", v, product.ID).First(&other).Error; err == nil {
				c.JSON(http.StatusConflict, gin.H{"error": "A product with this SKU already exists"})
				return
			}
			product.SKU = v
		}
		if v := c.PostForm("description"); v != "" {
			product.Description = v
		}
		if v := c.PostForm("price"); v != "" {
			if f, parseErr := strconv.ParseFloat(v, 64); parseErr == nil {
				product.Price = f
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
		}
		if v := c.PostForm("stock"); v != "" {
			if s, parseErr := strconv.Atoi(v); parseErr == nil {
				product.Stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}
		if v := c.PostForm("custom_fields"); v != "" {
			var customFields []string
			for _, f := range strings.Split(v, ",") {
				if f = strings.TrimSpace(f); f != "" {
					customFields = append(customFields, f)
				}
			}
			product.CustomFields = datatypes.NewJSONSlice(customFields)
		}

		if categoryIDsStr := c.PostForm("category_ids"); categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				}
			}
			if len(parsedIDs) > 0 {
				var categories []models.Category
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err == nil {
					if err := db.Model(&product).Association("Categories").Replace(categories); err != nil {
						c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update categories"})
						return
					}
				}
			}
		}

		// Handle optional image upload
		if file, err := c.FormFile("image"); err == nil {
			saveDir := filepath.Join(config.UploadsDir(), "products")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
				return
			}

			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")
			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

			savePath := filepath.Join(saveDir, filename)
			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save image"})
				return
			}

			product.Image = fmt.Sprintf("/uploads/products/%s", filename)
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
