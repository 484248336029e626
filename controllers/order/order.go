package orderControllers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/GBaga/back-end-food-api/middleware"
	"github.com/GBaga/back-end-food-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderInput struct {
	PaymentMethod string     `json:"paymentMethod"`
	Note          string     `json:"note"`
	PickupTime    *time.Time `json:"pickupTime"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"paymentStatus" binding:"required"`
}

// -------- Helpers --------

const defaultPickupDelay = 30 * time.Minute

// generateOrderRef returns a unique human-quotable order reference.
// Example: 20250908130500-<uuid4>
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order ID"})
		return 0, false
	}
	return uint(id), true
}

// -------- Handlers --------

// POST /api/orders
func CreateOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := middleware.CurrentUserID(c)

		// The whole body is optional; an empty one means all defaults.
		var input CreateOrderInput
		if err := c.ShouldBindJSON(&input); err != nil && !errors.Is(err, io.EOF) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order payload"})
			return
		}

		var cart models.Cart
		err := db.Preload("Items.Product").Where("user_id = ?", userID).First(&cart).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		// The cart stays untouched when anything in it can no longer be sold.
		if names := models.UnavailableItemNames(cart.Items); len(names) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Some items are no longer available",
				"items": names,
			})
			return
		}

		paymentMethod := input.PaymentMethod
		if paymentMethod == "" {
			paymentMethod = "cash"
		}
		pickupTime := time.Now().Add(defaultPickupDelay)
		if input.PickupTime != nil {
			pickupTime = *input.PickupTime
		}

		order := models.Order{
			OrderRef:      generateOrderRef(),
			UserID:        userID,
			Items:         models.BuildOrderItems(cart.Items),
			TotalAmount:   cart.TotalAmount,
			Status:        models.OrderStatusPending,
			PaymentStatus: models.PaymentStatusPending,
			PaymentMethod: paymentMethod,
			Note:          input.Note,
			PickupTime:    pickupTime,
		}

		// Order insert and cart reset either both happen or neither does.
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
				return err
			}
			return tx.Model(&cart).Update("total_amount", 0).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// GET /api/orders/my
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Where("user_id = ?", middleware.CurrentUserID(c)).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /api/orders/:id
func GetOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.UserID != middleware.CurrentUserID(c) && !middleware.IsAdmin(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PATCH /api/orders/:id/cancel
func CancelOrder(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		if order.UserID != middleware.CurrentUserID(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to cancel this order"})
			return
		}

		if !order.CanCancel() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot cancel order that is already being prepared or completed"})
			return
		}

		order.Status = models.OrderStatusCancelled
		if err := db.Model(&order).Update("status", order.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /api/orders/admin/all
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PATCH /api/orders/admin/:id/status
func UpdateOrderStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		var input UpdateOrderStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
			return
		}
		status, err := models.ParseOrderStatus(input.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		order.Status = status
		if err := db.Model(&order).Update("status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// PATCH /api/orders/admin/:id/payment
func UpdatePaymentStatus(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID, ok := parseOrderID(c)
		if !ok {
			return
		}

		var input UpdatePaymentStatusInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "PaymentStatus is required"})
			return
		}
		status, err := models.ParsePaymentStatus(input.PaymentStatus)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var order models.Order
		if err := db.Preload("Items").First(&order, orderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		order.PaymentStatus = status
		if err := db.Model(&order).Update("payment_status", status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment status"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
