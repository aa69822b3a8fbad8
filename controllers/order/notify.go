package orderControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/Iyedchebbi/SofaSteam2026/middleware"
	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// StatusEvent is pushed to the owning user when a booking changes status.
type StatusEvent struct {
	OrderID uint               `json:"order_id"`
	Status  models.OrderStatus `json:"status"`
}

// Hub fans booking status events out to the owning user's websocket
// connections and keeps the advisory unseen-confirmations badge counter.
// Losing a connection only delays the badge — order data lives in the DB.
type Hub struct {
	mu      sync.Mutex
	clients map[string]map[*websocket.Conn]bool
	unseen  map[string]int
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*websocket.Conn]bool),
		unseen:  make(map[string]int),
	}
}

// GET /orders/ws?token=
// The session JWT arrives as a query parameter because browsers cannot set
// headers on websocket dials.
func (h *Hub) OrderEventsHandler(c *gin.Context) {
	userID, err := middleware.ParseSessionToken(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	h.register(userID, conn)
	defer h.unregister(userID, conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

func (h *Hub) register(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.clients[userID] == nil {
		h.clients[userID] = make(map[*websocket.Conn]bool)
	}
	h.clients[userID][conn] = true
}

func (h *Hub) unregister(userID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients[userID], conn)
	if len(h.clients[userID]) == 0 {
		delete(h.clients, userID)
	}
}

// NotifyStatusChange pushes the event to the owner's connections and bumps
// the unseen counter when the new status is confirmed.
func (h *Hub) NotifyStatusChange(userID string, orderID uint, status models.OrderStatus) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if status == models.OrderStatusConfirmed {
		h.unseen[userID]++
	}

	data, err := json.Marshal(StatusEvent{OrderID: orderID, Status: status})
	if err != nil {
		return
	}
	for conn := range h.clients[userID] {
		conn.WriteMessage(websocket.TextMessage, data)
	}
}

// Unseen returns the user's unseen-confirmations count.
func (h *Hub) Unseen(userID string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.unseen[userID]
}

// ResetUnseen zeroes the badge; called when the user opens their bookings.
func (h *Hub) ResetUnseen(userID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.unseen, userID)
}

// GET /user/notifications
func (h *Hub) UnseenHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"unseen_confirmations": h.Unseen(userIDVal.(string))})
	}
}
