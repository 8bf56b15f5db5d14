package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry point that wires up the public storefront
// and the admin panel route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Public storefront routes (no middleware)
	SetupPublicRoutes(r, db)

	// Admin routes (JWT-protected)
	SetupAdminRoutes(r, db)
}
