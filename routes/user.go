package routes

import (
	cartControllers "github.com/Memoriestore01/memoriestore-api/controllers/cart"
	productControllers "github.com/Memoriestore01/memoriestore-api/controllers/product"
	uploadControllers "github.com/Memoriestore01/memoriestore-api/controllers/upload"
	userControllers "github.com/Memoriestore01/memoriestore-api/controllers/user"
	wishlistControllers "github.com/Memoriestore01/memoriestore-api/controllers/wishlist"
	"github.com/Memoriestore01/memoriestore-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", userControllers.GetUser(db))
		userGroup.PUT("/", userControllers.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartControllers.GetCart(db))
			cartGroup.POST("/", cartControllers.AddCartItem(db))
			cartGroup.PUT("/", cartControllers.UpdateCart(db))
			cartGroup.DELETE("/", cartControllers.RemoveCartItem(db)) // ?product_id=
		}

		// ──────────────── Wishlist ────────────────
		wishlistGroup := userGroup.Group("/wishlist")
		{
			wishlistGroup.GET("/", wishlistControllers.GetWishlist(db))
			wishlistGroup.POST("/", wishlistControllers.AddWishlistItem(db))
			wishlistGroup.DELETE("/", wishlistControllers.RemoveWishlistItem(db)) // ?product_id=
		}

		// ──────────────── Payment Proof Upload ────────────────
		userGroup.POST("/uploads/payment-proof", uploadControllers.UploadPaymentProof(db))

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productControllers.GetProducts(db))
		userGroup.GET("/products/:id", productControllers.GetProductByID(db))
		userGroup.GET("/categories", productControllers.GetAllCategoriesWithProducts(db))
	}
}
