package adminController

import (
	"net/http"

	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"
)

// GET /admin/orders/export-excel
//
// Dumps every order with its payment verification state. Used for manual
// reconciliation against the store's bank/UPI statements.
func ExportOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Preload("Items").Order("created_at DESC").Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "UserEmail", "UserName", "Items", "Subtotal", "Shipping", "Total",
			"Status", "PaymentMethod", "TransactionID", "PaymentAmount", "PaymentStatus",
			"VerifiedBy", "VerifiedAt", "CreatedAt",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range orders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.OrderID)
			row.AddCell().SetValue(o.UserEmail)
			row.AddCell().SetValue(o.UserName)
			row.AddCell().SetValue(len(o.Items))
			row.AddCell().SetValue(o.Subtotal)
			row.AddCell().SetValue(o.Shipping)
			row.AddCell().SetValue(o.Total)
			row.AddCell().SetValue(string(o.Status))
			row.AddCell().SetValue(string(o.PaymentDetails.Method))
			row.AddCell().SetValue(o.PaymentDetails.TransactionID)
			row.AddCell().SetValue(o.PaymentDetails.Amount)
			row.AddCell().SetValue(string(o.PaymentDetails.Status))
			row.AddCell().SetValue(o.PaymentDetails.VerifiedBy)
			if o.PaymentDetails.VerifiedAt != nil {
				row.AddCell().SetValue(o.PaymentDetails.VerifiedAt.Format("2006-01-02 15:04:05"))
			} else {
				row.AddCell().SetValue("")
			}
			row.AddCell().SetValue(o.CreatedAt.Format("2006-01-02 15:04:05"))
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
