package routes

import (
	"github.com/Memoriestore01/memoriestore-api/auth"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/auth")
	{
		// Google sign-in (Firebase ID token exchange)
		authGroup.POST("/google", func(c *gin.Context) {
			auth.GoogleLoginHandler(c.Writer, c.Request, db)
		})

		// Local accounts
		authGroup.POST("/register", auth.Register(db))
		authGroup.POST("/login", auth.Login(db))
	}
}
