package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID               string            `gorm:"primaryKey" json:"id"`
	Name             string            `gorm:"not null" json:"name"`
	Description      string            `json:"description"`
	ShortDescription string            `json:"shortDescription"`
	Price            float64           `gorm:"not null" json:"price"`
	Sizes            []string          `gorm:"serializer:json" json:"sizes"`  // first size is the default selection
	Colors           []string          `gorm:"serializer:json" json:"colors"`
	Images           map[string]string `gorm:"serializer:json" json:"images"` // color name -> image URL
	Category         string            `gorm:"index" json:"category"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt    `gorm:"index" json:"-"`
}

// DefaultSize returns the first declared size, the pre-selected one on product pages.
func (p *Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

// HasSize reports whether s is one of the product's declared sizes.
func (p *Product) HasSize(s string) bool {
	for _, size := range p.Sizes {
		if size == s {
			return true
		}
	}
	return false
}

// HasColor reports whether the product has an image for the given color.
func (p *Product) HasColor(c string) bool {
	_, ok := p.Images[c]
	return ok
}
