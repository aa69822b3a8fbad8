package models

import "time"

// CartItem is one (user, service) pairing pending checkout. The composite
// unique index enforces at most one row per pairing; repeat adds increment
// Quantity instead of inserting a duplicate. Quantity is always >= 1 — a
// quantity that would drop to 0 deletes the row.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"not null;uniqueIndex:idx_cart_user_service" json:"user_id"`
	ServiceID uint      `gorm:"not null;uniqueIndex:idx_cart_user_service" json:"service_id"`
	Service   Service   `gorm:"foreignKey:ServiceID" json:"service"`
	Quantity  int       `gorm:"not null" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CartTotal sums service price times quantity over all lines. Purely derived,
// never stored until checkout snapshots it into an order.
func CartTotal(items []CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Service.Price * float64(item.Quantity)
	}
	return total
}
