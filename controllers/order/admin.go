package orderControllers

import (
	"net/http"

	"github.com/Vishal221302/Agriculture-Shop-bakend/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetAllOrdersHandler returns every order, newest first, with its items and
// their product details for the admin panel.
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Preload("Items.Product").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
	}
}

type updateOrderStatusRequest struct {
	OrderStatus string `json:"order_status"`
}

// UpdateOrderStatusHandler sets the status of one order. Only the four known
// statuses are accepted.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil || !models.ValidOrderStatus(req.OrderStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid status"})
			return
		}

		if err := db.Model(&models.Order{}).
			Where("id = ?", c.Param("id")).
			Update("order_status", req.OrderStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated"})
	}
}

// DeleteOrderHandler removes an order and its items together.
func DeleteOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("order_id = ?", orderID).
				Delete(&models.OrderItem{}).Error; err != nil {
				return err
			}
			return tx.Where("id = ?", orderID).
				Delete(&models.Order{}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
	}
}
