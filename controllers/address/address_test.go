package addressControllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wirix/market-sfu/models"
)

func book(defaults ...bool) []models.Address {
	addresses := make([]models.Address, len(defaults))
	for i, d := range defaults {
		addresses[i] = models.Address{ID: uint(i + 1), UserID: "user-1", IsDefault: d}
	}
	return addresses
}

func countDefaults(addresses []models.Address) int {
	n := 0
	for _, a := range addresses {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestMarkDefaultLeavesExactlyOneDefault(t *testing.T) {
	addresses := book(true, false, false)

	assert.True(t, markDefault(addresses, 3))
	assert.Equal(t, 1, countDefaults(addresses))
	assert.True(t, addresses[2].IsDefault)
	assert.False(t, addresses[0].IsDefault, "previous default must be cleared")
}

func TestMarkDefaultIsIdempotent(t *testing.T) {
	addresses := book(false, true)

	assert.True(t, markDefault(addresses, 2))
	assert.True(t, markDefault(addresses, 2))
	assert.Equal(t, 1, countDefaults(addresses))
	assert.True(t, addresses[1].IsDefault)
}

func TestMarkDefaultUnknownAddress(t *testing.T) {
	addresses := book(true, false)

	assert.False(t, markDefault(addresses, 99))
}

func TestMarkDefaultRepairsDoubleDefault(t *testing.T) {
	// A book that somehow ended up with two defaults converges back to one.
	addresses := book(true, true, false)

	assert.True(t, markDefault(addresses, 2))
	assert.Equal(t, 1, countDefaults(addresses))
	assert.True(t, addresses[1].IsDefault)
}
