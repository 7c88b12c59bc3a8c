package checkout

// Flat-rate shipping, waived on carts strictly over the threshold.
// Exactly 100.00 still pays shipping; the storefront has always used a
// strict comparison here.
const (
	FreeShippingThreshold = 100.0
	FlatShippingCost      = 10.0
)

// Quote is the order pricing shown at the review stage.
type Quote struct {
	Subtotal     float64 `json:"subtotal"`
	ShippingCost float64 `json:"shippingCost"`
	Total        float64 `json:"total"`
}

// QuoteFor prices a cart subtotal.
func QuoteFor(subtotal float64) Quote {
	shipping := FlatShippingCost
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}
	return Quote{
		Subtotal:     subtotal,
		ShippingCost: shipping,
		Total:        subtotal + shipping,
	}
}
