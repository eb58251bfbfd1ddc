package routes

import (
	"github.com/Memoriestore01/memoriestore-api/config"
	orderControllers "github.com/Memoriestore01/memoriestore-api/controllers/order"
	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, payout config.Payout) {
	orders := r.Group("/orders")
	orders.Use(middleware.ValidateToken)
	{
		// Checkout
		orders.POST("/", orderControllers.CreateOrder(db, payout))

		// Caller's own orders (query: status, page, limit)
		orders.GET("/", orderControllers.GetMyOrders(db))

		// Single order by customer-facing reference; owner or admin only
		orders.GET("/:orderID", orderControllers.GetOrderByID(db))
	}
}
