package productcontroller

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Memoriestore01/memoriestore-api/config"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const categoryPublicPath = "/uploads/categories"

func CreateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		name := c.PostForm("name")
		if name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
			return
		}

		var imageURL string

		file, err := c.FormFile("image")
		if err == nil {
			saveDir := filepath.Join(config.UploadsDir(), "categories")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(500, gin.H{"error": "Failed to create upload folder"})
				return
			}

			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")

			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
			savePath := filepath.Join(saveDir, filename)

			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(500, gin.H{"error": "Failed to save image"})
				return
			}

			imageURL = fmt.Sprintf("%s/%s", categoryPublicPath, filename)
		}

		category := models.Category{
			Name:  name,
			Image: imageURL,
		}

		if err := db.Create(&category).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to create category"})
			return
		}

		c.JSON(201, category)
	}
}

// GetAllCategoriesWithProducts returns categories with their products
// preloaded, for the storefront's browse-by-category pages.
func GetAllCategoriesWithProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Preload("Products").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories with products"})
			return
		}

		c.JSON(http.StatusOK, categories)
	}
}

// GetAllCategories returns all categories.
func GetAllCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []models.Category
		if err := db.Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}

func UpdateCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(404, gin.H{"error": "Category not found"})
			return
		}

		if name := c.PostForm("name"); name != "" {
			category.Name = name
		}

		if file, err := c.FormFile("image"); err == nil {
			saveDir := filepath.Join(config.UploadsDir(), "categories")
			if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
				c.JSON(500, gin.H{"error": "Failed to create upload folder"})
				return
			}

			ext := filepath.Ext(file.Filename)
			base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
			base = strings.ReplaceAll(base, " ", "_")

			filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)
			savePath := filepath.Join(saveDir, filename)

			if err := c.SaveUploadedFile(file, savePath); err != nil {
				c.JSON(500, gin.H{"error": "Failed to save image"})
				return
			}

			category.Image = fmt.Sprintf("%s/%s", categoryPublicPath, filename)
		}

		if err := db.Save(&category).Error; err != nil {
			c.JSON(500, gin.H{"error": "Failed to update category"})
			return
		}

		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var category models.Category
		if err := db.First(&category, id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}

		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(&category).Association("Products").Clear(); err != nil {
				return err
			}
			return tx.Delete(&category).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
