package orderControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/Iyedchebbi/SofaSteam2026/policy"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type PlaceBookingRequest struct {
	ClientName      string `json:"client_name" binding:"required"`
	ClientPhone     string `json:"client_phone" binding:"required"`
	ShippingAddress string `json:"shipping_address" binding:"required"`
	ScheduledDate   string `json:"scheduled_date" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// DeleteAllConfirmation must be sent verbatim to the bulk wipe endpoint.
// Testing/debug affordance — a generic "are you sure" is not enough here.
const DeleteAllConfirmation = "DELETE ALL BOOKINGS"

type DeleteAllRequest struct {
	Confirm string `json:"confirm" binding:"required"`
}

// -------- Helpers --------

// parseScheduledDate accepts RFC 3339 or the bare datetime-local format the
// booking form submits, and rejects timestamps in the past.
func parseScheduledDate(raw string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04"} {
		if parsed, err = time.Parse(layout, raw); err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, errors.New("invalid scheduled_date")
	}
	if parsed.Before(time.Now()) {
		return time.Time{}, errors.New("scheduled_date must not be in the past")
	}
	return parsed, nil
}

// -------- Core Logic --------

// PlaceBooking converts the user's cart into an order. The order row, its
// line items with frozen per-unit prices, and the cart clear all commit in one
// transaction: either the full booking exists and the cart is empty, or
// nothing changed and the user can retry without re-selecting services.
func PlaceBooking(db *gorm.DB, userID string, req PlaceBookingRequest) (*models.Order, error) {
	scheduled, err := parseScheduledDate(req.ScheduledDate)
	if err != nil {
		return nil, err
	}

	var cartItems []models.CartItem
	if err := db.Preload("Service").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&cartItems).Error; err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, errors.New("cart is empty")
	}

	var orderItems []models.OrderItem
	for _, item := range cartItems {
		// A service retired after the line was added preloads as a zero value.
		// Refuse the checkout rather than freeze a zero price into the order.
		if item.Service.ID == 0 {
			return nil, errors.New("cart contains a service that is no longer offered")
		}
		orderItems = append(orderItems, models.OrderItem{
			ServiceID:       item.ServiceID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.Service.Price,
		})
	}

	order := models.Order{
		UserID:          userID,
		Items:           orderItems,
		TotalAmount:     models.CartTotal(cartItems),
		Status:          models.OrderStatusPending,
		ShippingAddress: req.ShippingAddress,
		ClientName:      req.ClientName,
		ClientPhone:     req.ClientPhone,
		ScheduledDate:   &scheduled,
		CreatedAt:       time.Now(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Customer Handlers --------

// POST /user/bookings
func PlaceBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req PlaceBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		order, err := PlaceBooking(db, userIDVal.(string), req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

// GET /user/bookings
// Listing the bookings is the "open my bookings view" moment, so it also
// resets the unseen-confirmations badge.
func GetMyBookingsHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userID).
			Preload("Items").
			Preload("Items.Service").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		hub.ResetUnseen(userID)
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/bookings/confirmed-count
// Seeds the badge after login, before any websocket event arrives.
func ConfirmedCountHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var count int64
		if err := db.Model(&models.Order{}).
			Where("user_id = ? AND status = ?", userIDVal, models.OrderStatusConfirmed).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": count})
	}
}

// PUT /user/bookings/:orderID/cancel
// Customers may cancel their own booking only while it is still pending.
func CancelMyBookingHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		isOwner := order.UserID == userID
		if err := policy.CanUpdateStatus(models.RoleCustomer, isOwner, order.Status, models.OrderStatusCancelled); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&order).Update("status", models.OrderStatusCancelled).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking"})
			return
		}

		hub.NotifyStatusChange(order.UserID, order.ID, models.OrderStatusCancelled)
		c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled"})
	}
}

// DELETE /user/bookings/:orderID
// Removal from history, allowed only once the booking has reached a terminal
// display state. Line items cascade at the DB layer.
func DeleteMyBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		userID := userIDVal.(string)
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		isOwner := order.UserID == userID
		if err := policy.CanDeleteOrder(models.RoleCustomer, isOwner, order.Status); err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
			return
		}

		if err := db.Delete(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking deleted"})
	}
}

// -------- Admin Handlers --------

// GET /admin/bookings
func GetAllBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Preload("Items.Service").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/bookings/:orderID/status
func UpdateBookingStatusHandler(db *gorm.DB, hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var req UpdateStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := models.ParseOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := policy.CanUpdateStatus(models.RoleAdmin, false, order.Status, newStatus); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		if err := db.Model(&order).Update("status", newStatus).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
			return
		}

		hub.NotifyStatusChange(order.UserID, order.ID, newStatus)
		c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully"})
	}
}

// DELETE /admin/bookings/:orderID
func AdminDeleteBookingHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")

		var order models.Order
		if err := db.First(&order, "id = ?", orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		if err := db.Delete(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete booking"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
	}
}

// DELETE /admin/bookings
// Destructive bulk wipe, gated behind an exact confirmation phrase.
func AdminDeleteAllBookingsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req DeleteAllRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if req.Confirm != DeleteAllConfirmation {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Confirmation phrase mismatch; send {\"confirm\": \"" + DeleteAllConfirmation + "\"}",
			})
			return
		}

		if err := db.Where("1 = 1").Delete(&models.Order{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All bookings deleted"})
	}
}
