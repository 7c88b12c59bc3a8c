package checkoutControllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wirix/market-sfu/cart"
	"github.com/wirix/market-sfu/checkout"
	"github.com/wirix/market-sfu/models"
	"gorm.io/gorm"
)

type PlaceOrderInput struct {
	AddressID     uint                 `json:"address_id" binding:"required"`
	PaymentMethod string               `json:"payment_method" binding:"required"`
	Card          checkout.CardDetails `json:"card"`
}

// Handler wires the checkout wizard to HTTP. One request walks the full
// flow: select address, validate payment, review pricing, place order.
type Handler struct {
	db     *gorm.DB
	carts  *cart.Manager
	placer checkout.OrderPlacer
	newRef func() string
}

func NewHandler(db *gorm.DB, carts *cart.Manager, placer checkout.OrderPlacer, newRef func() string) *Handler {
	if newRef == nil {
		newRef = generateOrderRef
	}
	return &Handler{db: db, carts: carts, placer: placer, newRef: newRef}
}

// generateOrderRef mints a unique order reference, e.g.
// "20250908130500-2f1c...".
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// GET /user/checkout/quote
func (h *Handler) GetQuote() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := sessionOwner(c)
		if !ok {
			return
		}

		userCart, err := h.carts.ForOwner(c.Request.Context(), owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}

		c.JSON(http.StatusOK, checkout.QuoteFor(userCart.TotalPrice()))
	}
}

// POST /user/checkout
func (h *Handler) PlaceOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := sessionOwner(c)
		if !ok {
			return
		}

		var input PlaceOrderInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		method, err := checkout.ParsePaymentMethod(input.PaymentMethod)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var address models.Address
		if err := h.db.Where("id = ? AND user_id = ?", input.AddressID, owner).First(&address).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Address not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch address"})
			}
			return
		}

		userCart, err := h.carts.ForOwner(c.Request.Context(), owner)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if userCart.TotalItems() == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		wizard := checkout.NewWizard(owner, userCart, h.placer, h.newRef)
		quote := wizard.Quote()

		wizard.SelectAddress(&address)
		if err := wizard.Next(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		wizard.SetPayment(method, input.Card)
		if err := wizard.Next(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		orderRef, err := wizard.PlaceOrder(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message":   "Order placed successfully",
			"order_ref": orderRef,
			"quote":     quote,
		})
	}
}

func sessionOwner(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	id, _ := v.(string)
	if id == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return id, true
}
