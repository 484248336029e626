package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up all route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public auth routes plus the token-protected profile
	SetupAuthRoutes(r, db)

	// Catalog: public reads, admin management
	SetupProductRoutes(r, db)

	// Cart routes (JWT-protected)
	SetupCartRoutes(r, db)

	// Order routes (JWT-protected, admin subsection)
	SetupOrderRoutes(r, db)
}
