package routes

import (
	"net/http"
	"time"

	orderControllers "github.com/Vishal221302/Agriculture-Shop-bakend/controllers/order"
	publicController "github.com/Vishal221302/Agriculture-Shop-bakend/controllers/public"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupPublicRoutes registers the unauthenticated storefront endpoints.
func SetupPublicRoutes(r *gin.Engine, db *gorm.DB) {
	api := r.Group("/api")
	{
		api.GET("/banner", publicController.GetActiveBannerHandler(db))
		api.GET("/categories", publicController.GetCategoriesHandler(db))
		api.GET("/products", publicController.GetProductsHandler(db))
		api.GET("/products/:id", publicController.GetProductHandler(db))

		// Cart order submission
		api.POST("/orders", orderControllers.SubmitOrderHandler(db))

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"success": true,
				"message": "Agriculture Shop API is running 🌾",
				"time":    time.Now().Format(time.RFC3339),
			})
		})
	}
}
