package cartControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wirix/market-sfu/cart"
	"github.com/wirix/market-sfu/catalog"
)

type AddToCartInput struct {
	ProductID     string `json:"product_id" binding:"required"`
	Quantity      int    `json:"quantity" binding:"required,min=1"`
	SelectedSize  string `json:"selected_size" binding:"required"`
	SelectedColor string `json:"selected_color" binding:"required"`
}

// No binding constraint on Quantity: 0 is a meaningful input that the
// aggregate rejects silently, and "required" would 400 on it instead.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// ownerID is the authenticated user or guest that owns the cart.
func ownerID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, ok := v.(string)
	if !ok || id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}

func loadCart(c *gin.Context, mgr *cart.Manager) (*cart.Cart, bool) {
	owner, ok := ownerID(c)
	if !ok {
		return nil, false
	}
	userCart, err := mgr.ForOwner(c.Request.Context(), owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return nil, false
	}
	return userCart, true
}

func cartResponse(userCart *cart.Cart) gin.H {
	return gin.H{
		"items":       userCart.Lines(),
		"total_items": userCart.TotalItems(),
		"total_price": userCart.TotalPrice(),
	}
}

// GET /user/cart
func GetCart(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := loadCart(c, mgr)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}

// POST /user/cart
func AddToCart(mgr *cart.Manager, cs *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddToCartInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product, err := cs.Get(c.Request.Context(), input.ProductID)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}

		// The aggregate trusts size and color; the boundary validates them.
		if !product.HasSize(input.SelectedSize) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not available in size: " + input.SelectedSize})
			return
		}
		if !product.HasColor(input.SelectedColor) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not available in color: " + input.SelectedColor})
			return
		}

		userCart, ok := loadCart(c, mgr)
		if !ok {
			return
		}

		line, err := userCart.AddToCart(c.Request.Context(), *product, input.Quantity, input.SelectedSize, input.SelectedColor)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}

		c.JSON(http.StatusCreated, line)
	}
}

// PUT /user/cart/:line_id
func UpdateCartItem(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID := c.Param("line_id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		userCart, ok := loadCart(c, mgr)
		if !ok {
			return
		}

		// Quantities below 1 are rejected silently: the cart is returned
		// unchanged rather than erroring.
		if err := userCart.UpdateQuantity(c.Request.Context(), lineID, input.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}

// DELETE /user/cart/:line_id
func DeleteCartItem(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		lineID := c.Param("line_id")

		userCart, ok := loadCart(c, mgr)
		if !ok {
			return
		}

		// Removing an absent line is a no-op, not an error.
		if err := userCart.RemoveFromCart(c.Request.Context(), lineID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			return
		}

		c.JSON(http.StatusOK, cartResponse(userCart))
	}
}

// DELETE /user/cart
func ClearCart(mgr *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		userCart, ok := loadCart(c, mgr)
		if !ok {
			return
		}

		if err := userCart.ClearCart(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
