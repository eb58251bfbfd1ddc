package uploadControllers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/Memoriestore01/memoriestore-api/config"
	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const paymentPublicPath = "/uploads/payments"

var allowedExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true, ".pdf": true,
}

// POST /user/uploads/payment-proof
//
// Stores the buyer's payment screenshot and returns the public URL the
// checkout flow embeds in paymentDetails.screenshot. The file is registered
// in the payment_proofs table so admins can audit uploads later.
func UploadPaymentProof(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		file, err := c.FormFile("screenshot")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "screenshot file is required"})
			return
		}

		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedExtensions[ext] {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported file type"})
			return
		}

		saveDir := filepath.Join(config.UploadsDir(), "payments")
		if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create upload folder"})
			return
		}

		// Random filename so one buyer cannot guess another's proof URL
		filename := uuid.NewString() + ext
		savePath := filepath.Join(saveDir, filename)

		if err := c.SaveUploadedFile(file, savePath); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file"})
			return
		}

		fileURL := fmt.Sprintf("%s/%s", paymentPublicPath, filename)

		proof, err := models.SavePaymentProof(db, email, file.Filename, fileURL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register upload"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"url":      proof.FileURL,
			"fileName": proof.FileName,
		})
	}
}
