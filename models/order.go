package models

import "time"

type PaymentMethod string

const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCash PaymentMethod = "cash" // cash on delivery
)

type Order struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	OrderRef      string        `gorm:"uniqueIndex;not null" json:"orderRef"`
	UserID        string        `gorm:"index;not null" json:"user_id"`
	Items         []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	Subtotal      float64       `json:"subtotal"`
	ShippingCost  float64       `json:"shipping_cost"`
	TotalAmount   float64       `json:"total_amount"`
	PaymentMethod PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`

	// Delivery address copied at placement time so later address-book
	// edits do not rewrite order history.
	ShipFirstName  string `json:"ship_first_name"`
	ShipLastName   string `json:"ship_last_name"`
	ShipCountry    string `json:"ship_country"`
	ShipCity       string `json:"ship_city"`
	ShipStreet     string `json:"ship_street"`
	ShipApartment  string `json:"ship_apartment,omitempty"`
	ShipPostalCode string `json:"ship_postal_code"`

	CreatedAt time.Time `json:"created_at"`
}

// OrderItem snapshots a cart line at the moment the order is placed.
type OrderItem struct {
	ID            uint    `gorm:"primaryKey" json:"id"`
	OrderID       uint    `gorm:"index" json:"-"`
	ProductID     string  `json:"product_id"`
	ProductName   string  `json:"product_name"`
	ProductImage  string  `json:"product_image"`
	UnitPrice     float64 `json:"unit_price"`
	SelectedSize  string  `json:"selected_size"`
	SelectedColor string  `json:"selected_color"`
	Quantity      int     `json:"quantity"`
}
