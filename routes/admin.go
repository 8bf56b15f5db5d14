package routes

import (
	adminController "github.com/Vishal221302/Agriculture-Shop-bakend/controllers/admin"
	orderControllers "github.com/Vishal221302/Agriculture-Shop-bakend/controllers/order"
	publicController "github.com/Vishal221302/Agriculture-Shop-bakend/controllers/public"
	"github.com/Vishal221302/Agriculture-Shop-bakend/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/api/admin/*" endpoints. Everything except
// login requires a valid admin token.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/api/admin")

	admin.POST("/login", adminController.LoginHandler(db))

	protected := admin.Group("")
	protected.Use(middleware.AuthenticateAdmin)
	{
		// ─────────── Banner Management ───────────
		protected.GET("/banners", adminController.GetBannersHandler(db))
		protected.POST("/banners", adminController.CreateBannerHandler(db))
		protected.PUT("/banners/:id", adminController.UpdateBannerHandler(db))
		protected.PUT("/banners/:id/activate", adminController.ActivateBannerHandler(db))
		protected.DELETE("/banners/:id", adminController.DeleteBannerHandler(db))
		// Legacy single-banner endpoint
		protected.GET("/banner", publicController.GetActiveBannerHandler(db))

		// ─────────── Category Management ───────────
		protected.GET("/categories", adminController.GetCategoriesHandler(db))
		protected.POST("/categories", adminController.CreateCategoryHandler(db))
		protected.PUT("/categories/:id", adminController.UpdateCategoryHandler(db))
		protected.DELETE("/categories/:id", adminController.DeleteCategoryHandler(db))

		// ─────────── Product Management ───────────
		protected.GET("/products", adminController.GetProductsHandler(db))
		protected.POST("/products", adminController.CreateProductHandler(db))
		protected.PUT("/products/:id", adminController.UpdateProductHandler(db))
		protected.DELETE("/products/:id", adminController.DeleteProductHandler(db))

		// ─────────── Orders ───────────
		protected.GET("/orders", orderControllers.GetAllOrdersHandler(db))
		protected.GET("/orders/export-excel", orderControllers.ExportOrdersToExcelHandler(db))
		protected.PUT("/orders/:id/status", orderControllers.UpdateOrderStatusHandler(db))
		protected.DELETE("/orders/:id", orderControllers.DeleteOrderHandler(db))

		// ─────────── Dashboard ───────────
		protected.GET("/stats", adminController.DashboardStatsHandler(db))
	}
}
