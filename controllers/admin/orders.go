package adminController

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	orderControllers "github.com/Memoriestore01/memoriestore-api/controllers/order"
	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Admin update actions
const (
	ActionUpdateStatus  = "updateStatus"
	ActionVerifyPayment = "verifyPayment"
	ActionAddNotes      = "addNotes"
)

type UpdateOrderRequest struct {
	OrderID       string `json:"orderId"`
	Action        string `json:"action"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	Notes         string `json:"notes"`
}

// GET /admin/orders?status=&payment_status=&page=&limit=
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := 1, 20
		if v := c.Query("page"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				page = n
			}
		}
		if v := c.Query("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		query := db.Model(&models.Order{})
		if status := c.Query("status"); status != "" {
			parsed, err := models.ParseOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", parsed)
		}
		if ps := c.Query("payment_status"); ps != "" {
			parsed, err := models.ParsePaymentStatus(ps)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("payment_status = ?", parsed)
		}

		var count int64
		if err := query.Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		var orders []models.Order
		if err := query.Preload("Items").
			Order("created_at DESC").
			Offset((page - 1) * limit).
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		stats, err := orderStats(db)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute order stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"page":   page,
			"limit":  limit,
			"total":  count,
			"stats":  stats,
		})
	}
}

// orderStats counts orders per fulfillment status plus pending payments.
func orderStats(db *gorm.DB) (gin.H, error) {
	type statusCount struct {
		Status models.OrderStatus
		Count  int64
	}
	var rows []statusCount
	if err := db.Model(&models.Order{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	stats := gin.H{}
	for _, s := range models.OrderStatuses() {
		stats[string(s)] = int64(0)
	}
	for _, row := range rows {
		stats[string(row.Status)] = row.Count
	}

	var pendingPayments int64
	if err := db.Model(&models.Order{}).
		Where("payment_status = ?", models.PaymentStatusPending).
		Count(&pendingPayments).Error; err != nil {
		return nil, err
	}
	stats["pendingPayments"] = pendingPayments

	return stats, nil
}

// PUT /admin/orders
//
// Applies one of three mutually exclusive partial patches to an order:
// updateStatus, verifyPayment, addNotes. No transition table is enforced;
// any status may move to any other, and a verified payment can be flipped
// back. Admins are trusted to know what they are doing.
func UpdateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		adminEmail := c.GetString(middleware.CtxUserEmail)

		var req UpdateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if req.OrderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
			return
		}

		var order models.Order
		if err := db.Where("order_id = ?", req.OrderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		switch req.Action {
		case ActionUpdateStatus:
			status, err := models.ParseOrderStatus(req.Status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if err := db.Model(&order).Update("status", status).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
				return
			}

		case ActionVerifyPayment:
			paymentStatus := models.PaymentStatusVerified
			if req.PaymentStatus != "" {
				parsed, err := models.ParsePaymentStatus(req.PaymentStatus)
				if err != nil {
					c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
					return
				}
				paymentStatus = parsed
			}
			updates := map[string]interface{}{
				"payment_status":      paymentStatus,
				"payment_verified_by": adminEmail,
				"payment_verified_at": time.Now(),
			}
			if req.Notes != "" {
				updates["payment_notes"] = req.Notes
			}
			if err := db.Model(&order).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify payment"})
				return
			}

		case ActionAddNotes:
			if err := db.Model(&order).Update("notes", req.Notes).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notes"})
				return
			}

		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action"})
			return
		}

		var updated models.Order
		if err := db.Preload("Items").Where("order_id = ?", req.OrderID).First(&updated).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		orderControllers.BroadcastOrderEvent("order.updated", updated)

		c.JSON(http.StatusOK, updated)
	}
}

