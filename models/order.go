package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // booking placed, awaiting admin review
	OrderStatusConfirmed OrderStatus = "confirmed" // approved by admin
	OrderStatusCompleted OrderStatus = "completed" // service performed
	OrderStatusCancelled OrderStatus = "cancelled"
)

var ErrInvalidOrderStatus = errors.New("invalid order status")

func ParseOrderStatus(s string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusCompleted):
		return OrderStatusCompleted, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", ErrInvalidOrderStatus
	}
}

// Order is an immutable record of a checkout except for Status. TotalAmount
// and the line items' PriceAtPurchase are frozen at creation and never
// recomputed from live service prices.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	UserID          string      `gorm:"not null;index" json:"user_id"`
	User            Profile     `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount     float64     `json:"total_amount"`
	Status          OrderStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	ShippingAddress string      `json:"shipping_address"`
	ScheduledDate   *time.Time  `json:"scheduled_date"`
	ClientName      string      `json:"client_name"`
	ClientPhone     string      `json:"client_phone"`
	CreatedAt       time.Time   `json:"created_at"`
}

// OrderItem stores the per-unit price as it was at submission time so that
// later price edits leave historical orders untouched.
type OrderItem struct {
	ID              uint    `gorm:"primaryKey" json:"id"`
	OrderID         uint    `gorm:"index;not null" json:"order_id"`
	ServiceID       uint    `json:"service_id"`
	Service         Service `gorm:"foreignKey:ServiceID" json:"service"`
	Quantity        int     `gorm:"not null" json:"quantity"`
	PriceAtPurchase float64 `gorm:"not null" json:"price_at_purchase"`
}
