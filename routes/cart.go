package routes

import (
	cartControllers "github.com/GBaga/back-end-food-api/controllers/cart"
	"github.com/GBaga/back-end-food-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers all "/api/cart/*" endpoints. Requires a bearer token.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.RequireAuth)
	{
		cartGroup.GET("", cartControllers.GetCart(db))                          // GET /api/cart
		cartGroup.POST("", cartControllers.AddCartItem(db))                     // POST /api/cart
		cartGroup.PUT("", cartControllers.UpdateCartItem(db))                   // PUT /api/cart
		cartGroup.DELETE("/item/:productId", cartControllers.RemoveCartItem(db)) // DELETE /api/cart/item/:productId
		cartGroup.DELETE("", cartControllers.ClearCart(db))                     // DELETE /api/cart
	}
}
