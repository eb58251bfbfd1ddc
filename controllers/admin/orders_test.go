package adminController

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAdminRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Order{}, &models.OrderItem{}))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.CtxUserEmail, "admin@memoriestore.in")
		c.Set(middleware.CtxUserRole, models.RoleAdmin)
		c.Next()
	})
	r.GET("/admin/orders", GetAllOrders(db))
	r.PUT("/admin/orders", UpdateOrder(db))
	return r, db
}

func seedOrder(t *testing.T, db *gorm.DB, orderID string, status models.OrderStatus, payment models.PaymentStatus) {
	t.Helper()
	require.NoError(t, db.Create(&models.Order{
		OrderID:   orderID,
		UserEmail: "asha@example.com",
		Total:     1050,
		Status:    status,
		PaymentDetails: models.PaymentDetails{
			Method:        models.PaymentMethodUPI,
			TransactionID: "TXN1",
			Amount:        1050,
			Status:        payment,
		},
	}).Error)
}

func adminPut(t *testing.T, r *gin.Engine, body gin.H) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	req := httptest.NewRequest(http.MethodPut, "/admin/orders", &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetAllOrdersStats(t *testing.T) {
	r, db := setupAdminRouter(t)

	seedOrder(t, db, "ORD-000001-AAAAA", models.OrderStatusPending, models.PaymentStatusPending)
	seedOrder(t, db, "ORD-000002-BBBBB", models.OrderStatusPending, models.PaymentStatusVerified)
	seedOrder(t, db, "ORD-000003-CCCCC", models.OrderStatusShipped, models.PaymentStatusVerified)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Orders []models.Order   `json:"orders"`
		Total  int64            `json:"total"`
		Stats  map[string]int64 `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Orders, 3)
	assert.EqualValues(t, 3, resp.Total)

	assert.EqualValues(t, 2, resp.Stats["pending"])
	assert.EqualValues(t, 1, resp.Stats["shipped"])
	assert.EqualValues(t, 1, resp.Stats["pendingPayments"])
	// Every status appears even with no orders in it
	assert.Contains(t, resp.Stats, "cancelled")
	assert.EqualValues(t, 0, resp.Stats["cancelled"])
}

func TestGetAllOrdersFilters(t *testing.T) {
	r, db := setupAdminRouter(t)

	seedOrder(t, db, "ORD-000001-AAAAA", models.OrderStatusPending, models.PaymentStatusPending)
	seedOrder(t, db, "ORD-000002-BBBBB", models.OrderStatusShipped, models.PaymentStatusVerified)

	var resp struct {
		Orders []models.Order `json:"orders"`
		Total  int64          `json:"total"`
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/orders?payment_status=pending", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Orders, 1)
	assert.Equal(t, "ORD-000001-AAAAA", resp.Orders[0].OrderID)

	req = httptest.NewRequest(http.MethodGet, "/admin/orders?status=nonsense", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateOrderStatusLeavesPaymentAlone(t *testing.T) {
	r, db := setupAdminRouter(t)
	seedOrder(t, db, "ORD-000001-AAAAA", models.OrderStatusPending, models.PaymentStatusPending)

	w := adminPut(t, r, gin.H{
		"orderId": "ORD-000001-AAAAA",
		"action":  ActionUpdateStatus,
		"status":  "confirmed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.Where("order_id = ?", "ORD-000001-AAAAA").First(&order).Error)
	assert.Equal(t, models.OrderStatusConfirmed, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentDetails.Status)
	assert.Empty(t, order.PaymentDetails.VerifiedBy)

	w = adminPut(t, r, gin.H{
		"orderId": "ORD-000001-AAAAA",
		"action":  ActionUpdateStatus,
		"status":  "not-a-status",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyPaymentStampsReviewer(t *testing.T) {
	r, db := setupAdminRouter(t)
	seedOrder(t, db, "ORD-000001-AAAAA", models.OrderStatusPending, models.PaymentStatusPending)

	// No paymentStatus in the request means "verified"
	w := adminPut(t, r, gin.H{
		"orderId": "ORD-000001-AAAAA",
		"action":  ActionVerifyPayment,
		"notes":   "matched bank statement",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.Where("order_id = ?", "ORD-000001-AAAAA").First(&order).Error)
	assert.Equal(t, models.PaymentStatusVerified, order.PaymentDetails.Status)
	assert.Equal(t, "admin@memoriestore.in", order.PaymentDetails.VerifiedBy)
	require.NotNil(t, order.PaymentDetails.VerifiedAt)
	assert.Equal(t, "matched bank statement", order.PaymentDetails.Notes)
	// Fulfillment status is untouched
	assert.Equal(t, models.OrderStatusPending, order.Status)

	// A verified payment can still be flipped to rejected
	w = adminPut(t, r, gin.H{
		"orderId":       "ORD-000001-AAAAA",
		"action":        ActionVerifyPayment,
		"paymentStatus": "rejected",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, db.Where("order_id = ?", "ORD-000001-AAAAA").First(&order).Error)
	assert.Equal(t, models.PaymentStatusRejected, order.PaymentDetails.Status)
}

func TestAddNotes(t *testing.T) {
	r, db := setupAdminRouter(t)
	seedOrder(t, db, "ORD-000001-AAAAA", models.OrderStatusPending, models.PaymentStatusPending)

	w := adminPut(t, r, gin.H{
		"orderId": "ORD-000001-AAAAA",
		"action":  ActionAddNotes,
		"notes":   "customer asked for gold foil",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, db.Where("order_id = ?", "ORD-000001-AAAAA").First(&order).Error)
	assert.Equal(t, "customer asked for gold foil", order.Notes)
	assert.Empty(t, order.PaymentDetails.Notes)
}

func TestUpdateOrderValidation(t *testing.T) {
	r, db := setupAdminRouter(t)
	seedOrder(t, db, "ORD-000001-AAAAA", models.OrderStatusPending, models.PaymentStatusPending)

	w := adminPut(t, r, gin.H{"action": ActionAddNotes, "notes": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = adminPut(t, r, gin.H{"orderId": "ORD-404404-XXXXX", "action": ActionAddNotes})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = adminPut(t, r, gin.H{"orderId": "ORD-000001-AAAAA", "action": "refund"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderVerificationFlow(t *testing.T) {
	r, db := setupAdminRouter(t)
	seedOrder(t, db, "ORD-000001-AAAAA", models.OrderStatusPending, models.PaymentStatusPending)

	steps := []gin.H{
		{"orderId": "ORD-000001-AAAAA", "action": ActionVerifyPayment},
		{"orderId": "ORD-000001-AAAAA", "action": ActionUpdateStatus, "status": "confirmed"},
		{"orderId": "ORD-000001-AAAAA", "action": ActionUpdateStatus, "status": "processing"},
		{"orderId": "ORD-000001-AAAAA", "action": ActionUpdateStatus, "status": "shipped"},
		{"orderId": "ORD-000001-AAAAA", "action": ActionUpdateStatus, "status": "delivered"},
	}
	for _, step := range steps {
		w := adminPut(t, r, step)
		require.Equal(t, http.StatusOK, w.Code, "step %v", step)
	}

	var order models.Order
	require.NoError(t, db.Where("order_id = ?", "ORD-000001-AAAAA").First(&order).Error)
	assert.Equal(t, models.OrderStatusDelivered, order.Status)
	assert.Equal(t, models.PaymentStatusVerified, order.PaymentDetails.Status)
}
