package cartControllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Iyedchebbi/SofaSteam2026/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Service{}, &models.CartItem{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// testIdentity mirrors ValidateToken for tests: the user id arrives in a
// header instead of a signed JWT.
func testIdentity(c *gin.Context) {
	if uid := c.GetHeader("X-Test-User"); uid != "" {
		c.Set("user_id", uid)
	}
	c.Next()
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(testIdentity)
	r.GET("/user/cart", GetUserCart(db))
	r.POST("/user/cart", AddToCart(db))
	r.PUT("/user/cart/:item_id", SetQuantity(db))
	r.DELETE("/user/cart/:item_id", DeleteCartItem(db))
	r.DELETE("/user/cart", ClearUserCart(db))
	return r
}

func seedService(t *testing.T, db *gorm.DB, name string, price float64) models.Service {
	t.Helper()
	s := models.Service{NameEN: name, Price: price, Category: models.CategoryUpholstery}
	if err := db.Create(&s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return s
}

func doJSON(r *gin.Engine, method, path, user, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddToCartIsIdempotentPerService(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	svc := seedService(t, db, "Sofa Deep Clean", 100)

	w := doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":1}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("first add: expected 201 got %d: %s", w.Code, w.Body.String())
	}
	w = doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":1}`)
	if w.Code != http.StatusOK {
		t.Fatalf("second add: expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var items []models.CartItem
	if err := db.Where("user_id = ?", "user-1").Find(&items).Error; err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected exactly one cart line, got %d", len(items))
	}
	if items[0].Quantity != 2 || items[0].ServiceID != svc.ID {
		t.Fatalf("unexpected cart line: %+v", items[0])
	}
}

func TestAddToCartRequiresAuth(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedService(t, db, "Sofa Deep Clean", 100)

	w := doJSON(r, http.MethodPost, "/user/cart", "", `{"service_id":1}`)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", w.Code)
	}

	var count int64
	db.Model(&models.CartItem{}).Count(&count)
	if count != 0 {
		t.Fatalf("unauthenticated call must not create cart state, found %d lines", count)
	}
}

func TestAddToCartRejectsUnknownService(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	w := doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":42}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestSetQuantityZeroDeletesLine(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedService(t, db, "Sofa Deep Clean", 100)

	doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":1}`)

	w := doJSON(r, http.MethodPut, "/user/cart/1", "user-1", `{"quantity":0}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.CartItem{}).Where("user_id = ?", "user-1").Count(&count)
	if count != 0 {
		t.Fatalf("quantity 0 must delete the line, found %d", count)
	}
}

func TestSetQuantityUpdatesAndGuardsOwnership(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedService(t, db, "Sofa Deep Clean", 100)

	doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":1}`)

	w := doJSON(r, http.MethodPut, "/user/cart/1", "user-1", `{"quantity":5}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var item models.CartItem
	db.First(&item, 1)
	if item.Quantity != 5 {
		t.Fatalf("expected quantity 5 got %d", item.Quantity)
	}

	// Someone else's line is invisible, not editable.
	w = doJSON(r, http.MethodPut, "/user/cart/1", "user-2", `{"quantity":3}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for foreign cart line got %d", w.Code)
	}
}

func TestGetUserCartJoinsAndOrders(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedService(t, db, "Sofa Deep Clean", 100)
	seedService(t, db, "Carpet Steam", 50)

	doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":1}`)
	doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":2}`)
	doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":2}`)

	w := doJSON(r, http.MethodGet, "/user/cart", "user-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var payload struct {
		Items []models.CartItem `json:"items"`
		Total float64           `json:"total"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(payload.Items) != 2 {
		t.Fatalf("expected 2 lines got %d", len(payload.Items))
	}
	if payload.Items[0].Service.NameEN != "Sofa Deep Clean" {
		t.Fatalf("lines not ordered by creation time: %+v", payload.Items)
	}
	if payload.Total != 200 {
		t.Fatalf("expected total 200 got %v", payload.Total)
	}
}

func TestClearUserCart(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedService(t, db, "Sofa Deep Clean", 100)

	doJSON(r, http.MethodPost, "/user/cart", "user-1", `{"service_id":1}`)
	doJSON(r, http.MethodPost, "/user/cart", "user-2", `{"service_id":1}`)

	w := doJSON(r, http.MethodDelete, "/user/cart", "user-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var mine, theirs int64
	db.Model(&models.CartItem{}).Where("user_id = ?", "user-1").Count(&mine)
	db.Model(&models.CartItem{}).Where("user_id = ?", "user-2").Count(&theirs)
	if mine != 0 {
		t.Fatalf("cart should be empty, found %d lines", mine)
	}
	if theirs != 1 {
		t.Fatalf("clearing one user's cart must not touch another's, found %d", theirs)
	}
}
