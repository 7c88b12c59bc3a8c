package models

import "time"

// Address is one entry in a user's address book. At most one address per
// user carries IsDefault = true; SetDefault in the address controller is
// the only operation allowed to flip the flag.
type Address struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     string    `gorm:"index;not null" json:"-"`
	FirstName  string    `gorm:"not null" json:"firstName"`
	LastName   string    `gorm:"not null" json:"lastName"`
	Email      string    `gorm:"not null" json:"email"`
	Phone      string    `json:"phone"`
	Country    string    `gorm:"not null" json:"country"`
	City       string    `gorm:"not null" json:"city"`
	Street     string    `gorm:"not null" json:"street"`
	Apartment  *string   `json:"apartment,omitempty"`
	PostalCode string    `gorm:"not null" json:"postalCode"`
	IsDefault  bool      `json:"isDefault"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
