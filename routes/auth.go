package routes

import (
	authControllers "github.com/GBaga/back-end-food-api/controllers/auth"
	"github.com/GBaga/back-end-food-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAuthRoutes registers all "/api/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, db *gorm.DB) {
	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/register", authControllers.Register(db))
		authGroup.POST("/login", authControllers.Login(db))
		authGroup.GET("/me", middleware.RequireAuth, authControllers.GetMe(db))
	}
}
