package routes

import (
	orderControllers "github.com/GBaga/back-end-food-api/controllers/order"
	"github.com/GBaga/back-end-food-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers all "/api/orders/*" endpoints. Requires a bearer
// token; the admin subsection additionally requires the admin claim.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/api/orders")
	orders.Use(middleware.RequireAuth)
	{
		orders.POST("", orderControllers.CreateOrder(db))            // POST /api/orders
		orders.GET("/my", orderControllers.GetMyOrders(db))          // GET /api/orders/my
		orders.GET("/:id", orderControllers.GetOrder(db))            // GET /api/orders/:id
		orders.PATCH("/:id/cancel", orderControllers.CancelOrder(db)) // PATCH /api/orders/:id/cancel

		admin := orders.Group("/admin")
		admin.Use(middleware.RequireAdmin)
		{
			admin.GET("/all", orderControllers.GetAllOrders(db))                 // GET /api/orders/admin/all
			admin.PATCH("/:id/status", orderControllers.UpdateOrderStatus(db))   // PATCH /api/orders/admin/:id/status
			admin.PATCH("/:id/payment", orderControllers.UpdatePaymentStatus(db)) // PATCH /api/orders/admin/:id/payment
		}
	}
}
