package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/wirix/market-sfu/auth"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	users := auth.NewGormUserStore(db)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", auth.Register(users))
		authGroup.POST("/login", auth.Login(users))
		authGroup.POST("/guest", auth.CreateGuestUser(db))
	}
}
