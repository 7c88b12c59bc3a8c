package productcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wirix/market-sfu/models"
	"gorm.io/gorm"
)

type ProductUpdateInput struct {
	Name             *string            `json:"name"`
	Description      *string            `json:"description"`
	ShortDescription *string            `json:"shortDescription"`
	Price            *float64           `json:"price"`
	Sizes            *[]string          `json:"sizes"`
	Colors           *[]string          `json:"colors"`
	Images           *map[string]string `json:"images"`
	Category         *string            `json:"category"`
}

// PUT /admin/products/:id
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch product"})
			}
			return
		}

		var input ProductUpdateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.Name != nil {
			product.Name = *input.Name
		}
		if input.Description != nil {
			product.Description = *input.Description
		}
		if input.ShortDescription != nil {
			product.ShortDescription = *input.ShortDescription
		}
		if input.Price != nil {
			if *input.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Price cannot be negative"})
				return
			}
			product.Price = *input.Price
		}
		if input.Sizes != nil {
			product.Sizes = *input.Sizes
		}
		if input.Colors != nil {
			product.Colors = *input.Colors
		}
		if input.Images != nil {
			product.Images = *input.Images
		}
		if input.Category != nil {
			product.Category = *input.Category
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
