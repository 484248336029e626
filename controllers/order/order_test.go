package orderControllers

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/GBaga/back-end-food-api/middleware"
	"github.com/GBaga/back-end-food-api/models"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// One connection keeps every query on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
	))
	return db
}

// authAs stands in for the bearer middleware and pins the caller's identity.
func authAs(userID uint, admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextIsAdmin, admin)
		c.Next()
	}
}

func newOrderRouter(db *gorm.DB, userID uint, admin bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	orders := r.Group("/api/orders", authAs(userID, admin))
	{
		orders.POST("", CreateOrder(db))
		orders.GET("/:id", GetOrder(db))
		orders.PATCH("/:id/cancel", CancelOrder(db))
	}
	return r
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, Password: "hash"}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedProduct(t *testing.T, db *gorm.DB, name string, price float64, available bool) models.Product {
	t.Helper()
	product := models.Product{
		Name:        name,
		Price:       price,
		Category:    models.CategoryOther,
		IsAvailable: available,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func seedCart(t *testing.T, db *gorm.DB, userID uint, items ...models.CartItem) models.Cart {
	t.Helper()
	cart := models.Cart{UserID: userID}
	require.NoError(t, db.Create(&cart).Error)
	for i := range items {
		items[i].CartID = cart.ID
		require.NoError(t, db.Create(&items[i]).Error)
	}
	require.NoError(t, db.Preload("Items.Product").First(&cart, cart.ID).Error)
	cart.RecomputeTotal()
	require.NoError(t, db.Model(&cart).Update("total_amount", cart.TotalAmount).Error)
	return cart
}

func TestCreateOrderFailsWhenItemUnavailable(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	burger := seedProduct(t, db, "Classic Burger", 5.00, true)
	pizza := seedProduct(t, db, "Seasonal Pizza", 8.00, false)
	cart := seedCart(t, db, user.ID,
		models.CartItem{ProductID: burger.ID, Quantity: 2},
		models.CartItem{ProductID: pizza.ID, Quantity: 1},
	)

	r := newOrderRouter(db, user.ID, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Seasonal Pizza")

	// No order was written and the cart is left exactly as it was.
	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(0), orderCount)

	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(2), itemCount)

	var reloaded models.Cart
	require.NoError(t, db.First(&reloaded, cart.ID).Error)
	assert.InDelta(t, cart.TotalAmount, reloaded.TotalAmount, 1e-9)
}

func TestCreateOrderSnapshotsPricesAndClearsCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	burger := seedProduct(t, db, "Classic Burger", 5.00, true)
	cart := seedCart(t, db, user.ID,
		models.CartItem{ProductID: burger.ID, Quantity: 2},
	)

	r := newOrderRouter(db, user.ID, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	require.NoError(t, db.Preload("Items").Where("user_id = ?", user.ID).First(&order).Error)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Classic Burger", order.Items[0].Name)
	assert.InDelta(t, 5.00, order.Items[0].Price, 1e-9)
	assert.InDelta(t, 10.00, order.TotalAmount, 1e-9)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, models.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, "cash", order.PaymentMethod)
	assert.NotEmpty(t, order.OrderRef)

	// Cart reset happened in the same transaction.
	var itemCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&itemCount).Error)
	assert.Equal(t, int64(0), itemCount)

	var reloaded models.Cart
	require.NoError(t, db.First(&reloaded, cart.ID).Error)
	assert.Zero(t, reloaded.TotalAmount)

	// A later price edit never reaches the snapshot.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", burger.ID).Update("price", 9.99).Error)
	var after models.Order
	require.NoError(t, db.Preload("Items").First(&after, order.ID).Error)
	assert.InDelta(t, 5.00, after.Items[0].Price, 1e-9)
	assert.InDelta(t, 10.00, after.TotalAmount, 1e-9)
}

func TestCreateOrderFailsOnEmptyCart(t *testing.T) {
	db := setupTestDB(t)
	user := seedUser(t, db, "alice@example.com")
	seedCart(t, db, user.ID)

	r := newOrderRouter(db, user.ID, false)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Cart is empty")
}

func TestGetOrderOwnership(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")

	order := models.Order{
		OrderRef: "test-ref-1",
		UserID:   owner.ID,
		Items:    []models.OrderItem{{ProductID: 1, Name: "Classic Burger", Price: 5.00, Quantity: 1}},
		Status:   models.OrderStatusPending,
	}
	require.NoError(t, db.Create(&order).Error)
	path := "/api/orders/" + itoa(order.ID)

	// Another user without the admin flag is turned away.
	w := httptest.NewRecorder()
	newOrderRouter(db, stranger.ID, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The same user with the admin flag may read any order.
	w = httptest.NewRecorder()
	newOrderRouter(db, stranger.ID, true).ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// The owner always may.
	w = httptest.NewRecorder()
	newOrderRouter(db, owner.ID, false).ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCancelOrderRules(t *testing.T) {
	db := setupTestDB(t)
	owner := seedUser(t, db, "owner@example.com")
	stranger := seedUser(t, db, "stranger@example.com")

	pending := models.Order{OrderRef: "test-ref-2", UserID: owner.ID, Status: models.OrderStatusPending}
	require.NoError(t, db.Create(&pending).Error)
	confirmed := models.Order{OrderRef: "test-ref-3", UserID: owner.ID, Status: models.OrderStatusConfirmed}
	require.NoError(t, db.Create(&confirmed).Error)

	// Someone else's order cannot be cancelled, admin or not.
	w := httptest.NewRecorder()
	newOrderRouter(db, stranger.ID, true).
		ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/orders/"+itoa(pending.ID)+"/cancel", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	// Past pending the cancel window is closed.
	w = httptest.NewRecorder()
	newOrderRouter(db, owner.ID, false).
		ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/orders/"+itoa(confirmed.ID)+"/cancel", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	var unchanged models.Order
	require.NoError(t, db.First(&unchanged, confirmed.ID).Error)
	assert.Equal(t, models.OrderStatusConfirmed, unchanged.Status)

	// A pending order cancels cleanly.
	w = httptest.NewRecorder()
	newOrderRouter(db, owner.ID, false).
		ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/orders/"+itoa(pending.ID)+"/cancel", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var cancelled models.Order
	require.NoError(t, db.First(&cancelled, pending.ID).Error)
	assert.Equal(t, models.OrderStatusCancelled, cancelled.Status)
}

func itoa(id uint) string {
	return strconv.Itoa(int(id))
}
