package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteForShippingBoundary(t *testing.T) {
	// The threshold is a strict >: exactly 100.00 still pays shipping.
	q := QuoteFor(100.00)
	assert.InDelta(t, 10.0, q.ShippingCost, 1e-9)
	assert.InDelta(t, 110.0, q.Total, 1e-9)

	q = QuoteFor(100.01)
	assert.InDelta(t, 0.0, q.ShippingCost, 1e-9)
	assert.InDelta(t, 100.01, q.Total, 1e-9)
}

func TestQuoteForFreeShippingAboveThreshold(t *testing.T) {
	q := QuoteFor(150.00)
	assert.InDelta(t, 0.0, q.ShippingCost, 1e-9)
	assert.InDelta(t, 150.0, q.Total, 1e-9)
}

func TestQuoteForFlatShippingBelowThreshold(t *testing.T) {
	q := QuoteFor(50.00)
	assert.InDelta(t, 10.0, q.ShippingCost, 1e-9)
	assert.InDelta(t, 60.0, q.Total, 1e-9)
}
