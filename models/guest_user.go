package models

import "time"

// GuestUser is a short-lived identity for anonymous shoppers so their
// cart has an owner key before they register.
type GuestUser struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
