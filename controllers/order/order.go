package orderControllers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Memoriestore01/memoriestore-api/config"
	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/Memoriestore01/memoriestore-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CheckoutItem struct {
	ProductID     string            `json:"productId" binding:"required"`
	Name          string            `json:"name" binding:"required"`
	Price         float64           `json:"price"`
	Image         string            `json:"image"`
	Quantity      int               `json:"quantity"`
	Customization map[string]string `json:"customization"`
}

type PaymentInput struct {
	Method        string  `json:"method" binding:"required"`
	TransactionID string  `json:"transactionId"`
	Amount        float64 `json:"amount"`
	Screenshot    string  `json:"screenshot"`
}

type CreateOrderRequest struct {
	Items           []CheckoutItem `json:"items"`
	Subtotal        float64        `json:"subtotal"`
	Shipping        float64        `json:"shipping"`
	Total           float64        `json:"total"`
	PaymentDetails  *PaymentInput  `json:"paymentDetails"`
	ShippingAddress models.Address `json:"shippingAddress"`
	Notes           string         `json:"notes"`
	ClearCart       bool           `json:"clearCart"`
}

// -------- Helpers --------

const orderIDAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// generateOrderID builds the customer-facing order reference, e.g.
// ORD-583201-7XK4Q. Collisions are vanishingly unlikely at this store's
// volume; there is no retry loop.
func generateOrderID() string {
	buf := make([]byte, 5)
	if _, err := rand.Read(buf); err != nil {
		for i := range buf {
			buf[i] = byte(time.Now().UnixNano() >> (uint(i) * 8))
		}
	}
	suffix := make([]byte, 5)
	for i, b := range buf {
		suffix[i] = orderIDAlphabet[int(b)%len(orderIDAlphabet)]
	}
	return fmt.Sprintf("ORD-%06d-%s", time.Now().UnixMilli()%1000000, suffix)
}

// applyPayoutDestination overwrites whatever payout details the client sent
// with the store's configured destination. The server owns where money should
// have gone; the buyer only supplies proof that it did.
func applyPayoutDestination(pd *models.PaymentDetails, payout config.Payout) {
	switch pd.Method {
	case models.PaymentMethodUPI:
		pd.UPIID = payout.UPIID
		pd.BankDetails = models.BankDetails{}
	case models.PaymentMethodBankTransfer:
		pd.UPIID = ""
		pd.BankDetails = models.BankDetails{
			BankName:      payout.Bank.BankName,
			AccountNumber: payout.Bank.AccountNumber,
			IFSCCode:      payout.Bank.IFSCCode,
			AccountHolder: payout.Bank.AccountHolder,
		}
	default:
		pd.UPIID = ""
		pd.BankDetails = models.BankDetails{}
	}
}

// -------- Handlers --------

// POST /orders
func CreateOrder(db *gorm.DB, payout config.Payout) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userName := c.GetString(middleware.CtxUserName)

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Validation order matters: items, then payment details, then the
		// method-specific transaction reference.
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order items are required"})
			return
		}
		if req.PaymentDetails == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Payment details are required"})
			return
		}
		method, err := models.ParsePaymentMethod(req.PaymentDetails.Method)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if (method == models.PaymentMethodUPI || method == models.PaymentMethodBankTransfer) &&
			req.PaymentDetails.TransactionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Transaction ID is required for " + string(method) + " payments"})
			return
		}

		orderItems := make([]models.OrderItem, 0, len(req.Items))
		for _, item := range req.Items {
			quantity := item.Quantity
			if quantity <= 0 {
				quantity = 1
			}
			orderItems = append(orderItems, models.OrderItem{
				ProductID:     item.ProductID,
				Name:          item.Name,
				Price:         item.Price,
				Image:         item.Image,
				Quantity:      quantity,
				Customization: datatypes.NewJSONType(item.Customization),
			})
		}

		paymentDetails := models.PaymentDetails{
			Method:        method,
			TransactionID: req.PaymentDetails.TransactionID,
			Amount:        req.PaymentDetails.Amount,
			Screenshot:    req.PaymentDetails.Screenshot,
			Status:        models.PaymentStatusPending,
		}
		applyPayoutDestination(&paymentDetails, payout)

		order := models.Order{
			OrderID:         generateOrderID(),
			UserEmail:       email,
			UserName:        userName,
			Items:           orderItems,
			Subtotal:        req.Subtotal,
			Shipping:        req.Shipping,
			Total:           req.Total,
			PaymentDetails:  paymentDetails,
			Status:          models.OrderStatusPending,
			ShippingAddress: req.ShippingAddress,
			Notes:           req.Notes,
		}

		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			if req.ClearCart {
				var cart models.Cart
				if err := tx.Where("user_email = ?", email).First(&cart).Error; err == nil {
					if err := tx.Where("cart_id = ?", cart.CartID).
						Delete(&models.CartItem{}).Error; err != nil {
						return err
					}
					if err := tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
						Update("total", 0).Error; err != nil {
						return err
					}
				}
			}
			return nil
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		broadcastOrderEvent("order.created", order)

		c.JSON(http.StatusCreated, gin.H{
			"orderId":       order.OrderID,
			"total":         order.Total,
			"status":        order.Status,
			"paymentStatus": order.PaymentDetails.Status,
		})
	}
}

// GET /orders?status=&page=&limit=
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		page, limit := pagination(c, 10)
		query := db.Model(&models.Order{}).Where("user_email = ?", email)

		if status := c.Query("status"); status != "" {
			parsed, err := models.ParseOrderStatus(status)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			query = query.Where("status = ?", parsed)
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

		c.JSON(http.StatusOK, gin.H{
			"orders": orders,
			"page":   page,
			"limit":  limit,
			"total":  count,
		})
	}
}

// GET /orders/:orderID
func GetOrderByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(middleware.CtxUserEmail)
		if email == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var order models.Order
		if err := db.Preload("Items").Where("order_id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		// Orders are readable by their owner and by admins only
		role := c.GetString(middleware.CtxUserRole)
		if order.UserEmail != email && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not your order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// pagination reads page/limit query params with the given default limit.
func pagination(c *gin.Context, defaultLimit int) (page, limit int) {
	page = 1
	limit = defaultLimit
	if n, err := strconv.Atoi(c.Query("page")); err == nil && n > 0 {
		page = n
	}
	if n, err := strconv.Atoi(c.Query("limit")); err == nil && n > 0 {
		limit = n
	}
	return page, limit
}
