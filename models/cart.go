package models

import "time"

type Cart struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	UserID      uint       `gorm:"uniqueIndex" json:"user_id"` // one cart per user
	Items       []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"`
	TotalAmount float64    `json:"total_amount"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CartItem keeps only a product reference and a quantity. Display fields and
// totals always come from the live product row, so price edits show up on the
// next cart read.
type CartItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	CartID    uint    `gorm:"index" json:"-"`
	ProductID uint    `gorm:"not null" json:"product_id"`
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// FindItem returns the index of the line item for productID, or -1.
func (c *Cart) FindItem(productID uint) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// AddItem merges the quantity into an existing line item or appends a new one,
// so a product never appears on two lines. The returned pointer is the
// affected item; a freshly appended item has a zero ID until persisted.
func (c *Cart) AddItem(product Product, quantity int) *CartItem {
	if i := c.FindItem(product.ID); i >= 0 {
		c.Items[i].Quantity += quantity
		return &c.Items[i]
	}
	c.Items = append(c.Items, CartItem{
		CartID:    c.ID,
		ProductID: product.ID,
		Product:   product,
		Quantity:  quantity,
	})
	return &c.Items[len(c.Items)-1]
}

// SetItemQuantity replaces the quantity of an existing line item and returns
// it, or nil when the product is not in the cart.
func (c *Cart) SetItemQuantity(productID uint, quantity int) *CartItem {
	i := c.FindItem(productID)
	if i < 0 {
		return nil
	}
	c.Items[i].Quantity = quantity
	return &c.Items[i]
}

// RemoveItem drops the line item for productID if present. Removing an absent
// item is a no-op, reported by the return value.
func (c *Cart) RemoveItem(productID uint) bool {
	i := c.FindItem(productID)
	if i < 0 {
		return false
	}
	c.Items = append(c.Items[:i], c.Items[i+1:]...)
	return true
}

// RecomputeTotal reduces the loaded product prices into TotalAmount. Items
// must carry their Product rows; callers preload them before mutating.
func (c *Cart) RecomputeTotal() {
	total := 0.0
	for i := range c.Items {
		total += c.Items[i].Product.Price * float64(c.Items[i].Quantity)
	}
	c.TotalAmount = total
}
