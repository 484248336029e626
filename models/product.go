package models

import (
	"errors"
	"strings"
	"time"
)

type ProductCategory string

const (
	CategoryBurger  ProductCategory = "burger"
	CategoryPizza   ProductCategory = "pizza"
	CategoryDrink   ProductCategory = "drink"
	CategoryDessert ProductCategory = "dessert"
	CategoryOther   ProductCategory = "other"
)

// ParseProductCategory maps a request string onto a known category.
// An empty string falls back to "other".
func ParseProductCategory(category string) (ProductCategory, error) {
	switch strings.ToLower(category) {
	case "":
		return CategoryOther, nil
	case string(CategoryBurger):
		return CategoryBurger, nil
	case string(CategoryPizza):
		return CategoryPizza, nil
	case string(CategoryDrink):
		return CategoryDrink, nil
	case string(CategoryDessert):
		return CategoryDessert, nil
	case string(CategoryOther):
		return CategoryOther, nil
	default:
		return "", errors.New("invalid product category")
	}
}

type Product struct {
	ID          uint            `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string          `gorm:"not null" json:"name"`
	Price       float64         `gorm:"not null;default:0" json:"price"`
	Quantity    int             `gorm:"not null;default:0" json:"quantity"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Category    ProductCategory `gorm:"type:VARCHAR(20);default:'other'" json:"category"`
	IsAvailable bool            `gorm:"default:true" json:"isAvailable"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}
