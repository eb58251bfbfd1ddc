package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Memoriestore01/memoriestore-api/config"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CreateProduct creates a new invitation product with categories + image upload.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Required fields
		name := c.PostForm("name")
		sku := c.PostForm("sku")
		priceStr := c.PostForm("price")
		if name == "" || sku == "" || priceStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, sku, and price are required"})
			return
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
			return
		}

		// Optional fields
		description := c.PostForm("description")
		categoryIDsStr := c.PostForm("category_ids")
		customFieldsStr := c.PostForm("custom_fields") // comma-separated keys

		var stock int
		if stockStr := c.PostForm("stock"); stockStr != "" {
			if s, parseErr := strconv.Atoi(stockStr); parseErr == nil {
				stock = s
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
		}

		// SKU must be unique across the catalog
		var existing models.Product
		if err := db.Where("sku = ?", sku).First(&existing).Error; err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "A product with this SKU already exists"})
			return
		}

		// Categories
		var categories []models.Category
		if categoryIDsStr != "" {
			idTokens := strings.Split(categoryIDsStr, ",")
			var parsedIDs []uint
			for _, tok := range idTokens {
				tok = strings.TrimSpace(tok)
				if tok == "" {
					continue
				}
				if id64, parseErr := strconv.ParseUint(tok, 10, 64); parseErr == nil {
					parsedIDs = append(parsedIDs, uint(id64))
				} else {
					c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_ids format"})
					return
				}
			}
			if len(parsedIDs) > 0 {
				if err := db.Where("id IN ?", parsedIDs).Find(&categories).Error; err != nil {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
					return
				}
			}
		}

		var customFields []string
		for _, f := range strings.Split(customFieldsStr, ",") {
			if f = strings.TrimSpace(f); f != "" {
				customFields = append(customFields, f)
			}
		}

		// Image upload
		file, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Image is required"})
			return
		}
		filename := strings.ReplaceAll(file.Filename, " ", "_")

		saveDir := filepath.Join(config.UploadsDir(), "products")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to create upload folder: %v", err)})
			return
		}
		savePath := filepath.Join(saveDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to save image: %v", err)})
			return
		}

		imageURL := fmt.Sprintf("/uploads/products/%s", filename)

		newProduct := models.Product{
			Name:         name,
			SKU:          sku,
			Description:  description,
			Price:        price,
			Image:        imageURL,
			Categories:   categories,
			CustomFields: datatypes.NewJSONSlice(customFields),
			Stock:        stock,
		}

		if err := db.Create(&newProduct).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, newProduct)
	}
}
