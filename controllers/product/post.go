package productcontroller

import (
	"net/http"

	"github.com/GBaga/back-end-food-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CreateProductInput struct {
	Name        string  `json:"name" binding:"required"`
	Price       float64 `json:"price" binding:"gte=0"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Description string  `json:"description"`
	ImageURL    string  `json:"imageUrl"`
	Category    string  `json:"category"`
	IsAvailable *bool   `json:"isAvailable"`
}

// POST /api/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CreateProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Name, a non-negative price and quantity are required"})
			return
		}

		category, err := models.ParseProductCategory(input.Category)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		available := true
		if input.IsAvailable != nil {
			available = *input.IsAvailable
		}

		product := models.Product{
			Name:        input.Name,
			Price:       input.Price,
			Quantity:    input.Quantity,
			Description: input.Description,
			ImageURL:    input.ImageURL,
			Category:    category,
			IsAvailable: available,
		}
		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
