package routes

import (
	adminController "github.com/Memoriestore01/memoriestore-api/controllers/admin"
	cartControllers "github.com/Memoriestore01/memoriestore-api/controllers/cart"
	orderControllers "github.com/Memoriestore01/memoriestore-api/controllers/order"
	productcontroller "github.com/Memoriestore01/memoriestore-api/controllers/product"
	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires a valid JWT
// plus the admin role on the caller's user record.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(db))
	{
		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", adminController.GetAllOrders(db))
			orderAdmin.PUT("", adminController.UpdateOrder(db))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}

		// ─────────── User Management ───────────
		adminGroup.GET("/users", adminController.GetAllUsers(db))
		adminGroup.GET("/payment-proofs", adminController.GetPaymentProofs(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
		}

		// ─────────── Category Management ───────────
		categoryAdmin := adminGroup.Group("/categories")
		{
			categoryAdmin.POST("", productcontroller.CreateCategory(db))
			categoryAdmin.PUT("/:id", productcontroller.UpdateCategory(db))
			categoryAdmin.GET("", productcontroller.GetAllCategories(db))
			categoryAdmin.DELETE("/:id", productcontroller.DeleteCategory(db))
		}

		// ─────────── Support: inspect a user's cart ───────────
		adminGroup.GET("/user-cart/:email", cartControllers.GetUserCartForAdmin(db))
	}
}
