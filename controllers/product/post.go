package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wirix/market-sfu/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name             string            `json:"name" binding:"required"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"shortDescription"`
	Price            float64           `json:"price" binding:"required,gte=0"`
	Sizes            []string          `json:"sizes" binding:"required,min=1"`
	Colors           []string          `json:"colors" binding:"required,min=1"`
	Images           map[string]string `json:"images" binding:"required"`
	Category         string            `json:"category" binding:"required"`
}

// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// Every color must have an image so the storefront can render it.
		for _, color := range input.Colors {
			if _, ok := input.Images[color]; !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Missing image for color: " + color})
				return
			}
		}

		product := models.Product{
			ID:               uuid.NewString(),
			Name:             input.Name,
			Description:      input.Description,
			ShortDescription: input.ShortDescription,
			Price:            input.Price,
			Sizes:            input.Sizes,
			Colors:           input.Colors,
			Images:           input.Images,
			Category:         input.Category,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product)
	}
}
