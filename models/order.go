package models

import "time"

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // Order placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // Confirmed by the shop
	OrderStatusDelivered OrderStatus = "delivered" // Customer received the items
	OrderStatusCancelled OrderStatus = "cancelled" // Cancelled by the shop
)

// ValidOrderStatus reports whether s is one of the known statuses.
func ValidOrderStatus(s string) bool {
	switch OrderStatus(s) {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	MobileNumber string      `gorm:"type:VARCHAR(10);not null" json:"mobile_number"`
	Address      string      `gorm:"not null" json:"address"`
	OrderStatus  OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"order_status"`
	Items        []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt    time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	OrderID   uint     `gorm:"index;not null" json:"order_id"`
	ProductID uint     `gorm:"not null" json:"product_id"`
	Product   Product  `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE" json:"product"`
	Quantity  int      `gorm:"not null;default:1" json:"quantity"`
	Price     *float64 `gorm:"type:DECIMAL(10,2)" json:"price"`
}
