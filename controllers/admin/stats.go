package adminController

import (
	"net/http"
	"time"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type statusCount struct {
	OrderStatus string
	Cnt         int64
}

type dailyCount struct {
	Day string `json:"day"`
	Cnt int64  `json:"cnt"`
}

type topProduct struct {
	MedicineNameHi string `json:"medicine_name_hi"`
	MedicineNameEn string `json:"medicine_name_en"`
	TotalQty       int64  `json:"total_qty"`
}

// DashboardStatsHandler aggregates the numbers the admin dashboard shows:
// entity counts, order status breakdown, orders per day for the last week,
// most-ordered products, revenue and the 30-day order count.
func DashboardStatsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories, products, orders int64
		if err := db.Model(&models.Category{}).Count(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		if err := db.Model(&models.Product{}).Count(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		if err := db.Model(&models.Order{}).Count(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		var statusRows []statusCount
		if err := db.Model(&models.Order{}).
			Select("order_status, COUNT(*) AS cnt").
			Group("order_status").
			Scan(&statusRows).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		statusBreakdown := map[string]int64{
			string(models.OrderStatusPending):   0,
			string(models.OrderStatusConfirmed): 0,
			string(models.OrderStatusDelivered): 0,
			string(models.OrderStatusCancelled): 0,
		}
		for _, row := range statusRows {
			statusBreakdown[row.OrderStatus] = row.Cnt
		}

		// Orders per day, last 7 days. Bucketed in Go so every day shows
		// up even with zero orders.
		now := time.Now()
		weekStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -6)
		var createdAts []time.Time
		if err := db.Model(&models.Order{}).
			Where("created_at >= ?", weekStart).
			Pluck("created_at", &createdAts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		byDay := map[string]int64{}
		for _, ts := range createdAts {
			byDay[ts.Format("2006-01-02")]++
		}
		daily := make([]dailyCount, 0, 7)
		for i := 6; i >= 0; i-- {
			key := now.AddDate(0, 0, -i).Format("2006-01-02")
			daily = append(daily, dailyCount{Day: key, Cnt: byDay[key]})
		}

		var topProducts []topProduct
		if err := db.Model(&models.OrderItem{}).
			Select("p.medicine_name_hi, p.medicine_name_en, SUM(order_items.quantity) AS total_qty").
			Joins("JOIN products p ON p.id = order_items.product_id").
			Group("order_items.product_id, p.medicine_name_hi, p.medicine_name_en").
			Order("total_qty DESC").
			Limit(5).
			Scan(&topProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		var revenue float64
		if err := db.Model(&models.OrderItem{}).
			Select("COALESCE(SUM(price * quantity), 0)").
			Where("price IS NOT NULL").
			Scan(&revenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		var recent int64
		if err := db.Model(&models.Order{}).
			Where("created_at >= ?", now.AddDate(0, 0, -30)).
			Count(&recent).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"data": gin.H{
				"categories":      categories,
				"products":        products,
				"orders":          orders,
				"revenue":         revenue,
				"recent":          recent,
				"statusBreakdown": statusBreakdown,
				"daily":           daily,
				"topProducts":     topProducts,
			},
		})
	}
}
