package routes

import (
	productcontroller "github.com/GBaga/back-end-food-api/controllers/product"
	"github.com/GBaga/back-end-food-api/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the catalog endpoints: public reads plus
// admin-only management.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/api/products")
	{
		products.GET("", productcontroller.GetProducts(db))        // GET /api/products
		products.GET("/:id", productcontroller.GetProductByID(db)) // GET /api/products/:id
	}

	productAdmin := r.Group("/api/products")
	productAdmin.Use(middleware.RequireAuth, middleware.RequireAdmin)
	{
		productAdmin.POST("", productcontroller.CreateProduct(db))                    // POST /api/products
		productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))                 // PUT /api/products/:id
		productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))              // DELETE /api/products/:id
		productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db)) // GET /api/products/export-excel
	}
}
