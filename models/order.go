package models

import (
	"errors"
	"strings"
	"time"
)

type OrderStatus string
type PaymentStatus string

const (
	OrderStatusPending   OrderStatus = "pending"   // placed, awaiting confirmation
	OrderStatusConfirmed OrderStatus = "confirmed" // accepted by the kitchen
	OrderStatusPreparing OrderStatus = "preparing" // being cooked
	OrderStatusReady     OrderStatus = "ready"     // ready for pickup
	OrderStatusDelivered OrderStatus = "delivered" // handed over, terminal
	OrderStatusCancelled OrderStatus = "cancelled" // terminal

	PaymentStatusPending PaymentStatus = "pending"
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusFailed  PaymentStatus = "failed"
)

// ParseOrderStatus maps a request string onto a known order status.
func ParseOrderStatus(status string) (OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(OrderStatusPending):
		return OrderStatusPending, nil
	case string(OrderStatusConfirmed):
		return OrderStatusConfirmed, nil
	case string(OrderStatusPreparing):
		return OrderStatusPreparing, nil
	case string(OrderStatusReady):
		return OrderStatusReady, nil
	case string(OrderStatusDelivered):
		return OrderStatusDelivered, nil
	case string(OrderStatusCancelled):
		return OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// ParsePaymentStatus maps a request string onto a known payment status.
func ParsePaymentStatus(status string) (PaymentStatus, error) {
	switch strings.ToLower(status) {
	case string(PaymentStatusPending):
		return PaymentStatusPending, nil
	case string(PaymentStatusPaid):
		return PaymentStatusPaid, nil
	case string(PaymentStatusFailed):
		return PaymentStatusFailed, nil
	default:
		return "", errors.New("invalid payment status")
	}
}

// Order is a snapshot of a cart at checkout. Item names and prices are frozen
// at creation; only Status and PaymentStatus change afterwards.
type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex" json:"order_ref"`
	UserID        uint          `gorm:"index;not null" json:"user_id"`
	User          User          `gorm:"foreignKey:UserID" json:"user"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount   float64       `json:"total_amount"`
	Status        OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentMethod string        `json:"payment_method"`
	Note          string        `json:"note"`
	PickupTime    time.Time     `json:"pickup_time"`
	CreatedAt     time.Time     `json:"created_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"-"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// CanCancel reports whether the owner may still cancel. Only a pending order
// qualifies; once the kitchen confirms it the cancel window is closed.
func (o *Order) CanCancel() bool {
	return o.Status == OrderStatusPending
}

// BuildOrderItems snapshots cart line items into order items, copying the
// product name and price so later catalog edits never touch placed orders.
// Items must carry their Product rows.
func BuildOrderItems(items []CartItem) []OrderItem {
	orderItems := make([]OrderItem, 0, len(items))
	for i := range items {
		orderItems = append(orderItems, OrderItem{
			ProductID: items[i].ProductID,
			Name:      items[i].Product.Name,
			Price:     items[i].Product.Price,
			Quantity:  items[i].Quantity,
		})
	}
	return orderItems
}

// UnavailableItemNames lists the names of cart items whose product is no
// longer available for ordering.
func UnavailableItemNames(items []CartItem) []string {
	var names []string
	for i := range items {
		if !items[i].Product.IsAvailable {
			names = append(names, items[i].Product.Name)
		}
	}
	return names
}
