package orderControllers

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wirix/market-sfu/checkout"
	"github.com/wirix/market-sfu/models"
	"gorm.io/gorm"
)

// Service records placed orders. It is the order-creation collaborator
// behind the checkout wizard.
type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// PlaceOrder persists the order with a snapshot of its lines and the
// delivery address, then notifies the admin order feed.
func (s *Service) PlaceOrder(ctx context.Context, req checkout.OrderRequest) error {
	items := make([]models.OrderItem, 0, len(req.Lines))
	for _, line := range req.Lines {
		items = append(items, models.OrderItem{
			ProductID:     line.Product.ID,
			ProductName:   line.Product.Name,
			ProductImage:  line.Product.Images[line.SelectedColor],
			UnitPrice:     line.Product.Price,
			SelectedSize:  line.SelectedSize,
			SelectedColor: line.SelectedColor,
			Quantity:      line.Quantity,
		})
	}

	apartment := ""
	if req.Address.Apartment != nil {
		apartment = *req.Address.Apartment
	}

	order := models.Order{
		OrderRef:       req.OrderRef,
		UserID:         req.Owner,
		Items:          items,
		Subtotal:       req.Quote.Subtotal,
		ShippingCost:   req.Quote.ShippingCost,
		TotalAmount:    req.Quote.Total,
		PaymentMethod:  req.PaymentMethod,
		ShipFirstName:  req.Address.FirstName,
		ShipLastName:   req.Address.LastName,
		ShipCountry:    req.Address.Country,
		ShipCity:       req.Address.City,
		ShipStreet:     req.Address.Street,
		ShipApartment:  apartment,
		ShipPostalCode: req.Address.PostalCode,
	}

	if err := s.db.WithContext(ctx).Create(&order).Error; err != nil {
		return err
	}

	log.Printf("✅ Order %s placed for %s (total %.2f)", order.OrderRef, order.UserID, order.TotalAmount)
	broadcastNewOrder(order)
	return nil
}

// GET /user/orders
func GetMyOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var orders []models.Order
		if err := db.
			Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}

// GET /admin/orders
func GetAllOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Preload("Items").
			Order("created_at DESC").
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		c.JSON(http.StatusOK, orders)
	}
}
