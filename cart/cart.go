// Package cart implements the shopping cart aggregate: an
// insertion-ordered list of lines keyed by (product, size, color),
// snapshotted to a Store on every mutation.
package cart

import (
	"context"
	"sync"

	"github.com/wirix/market-sfu/models"
)

// LineItem is one entry in the cart: a product/size/color combination
// and its quantity.
type LineItem struct {
	ID            string         `json:"id"`
	Product       models.Product `json:"product"`
	Quantity      int            `json:"quantity"`
	SelectedSize  string         `json:"selectedSize"`
	SelectedColor string         `json:"selectedColor"`
}

// Store is the durable snapshot port behind the cart. The production
// implementation is Redis; tests use MemoryStore.
type Store interface {
	Save(ctx context.Context, owner string, lines []LineItem) error
	Load(ctx context.Context, owner string) ([]LineItem, error)
}

// IDGenerator mints line identifiers. Injectable so tests can supply
// deterministic values.
type IDGenerator func() string

// Cart is owned by a single shopper. Mutations are serialized by a
// mutex; handlers for the same session may run on different goroutines.
type Cart struct {
	mu    sync.Mutex
	owner string
	lines []LineItem
	store Store
	newID IDGenerator
}

// New returns an empty cart for owner.
func New(owner string, store Store, newID IDGenerator) *Cart {
	return &Cart{owner: owner, store: store, newID: newID}
}

// Load rehydrates the owner's cart from its last persisted snapshot. A
// missing snapshot yields an empty cart, not an error.
func Load(ctx context.Context, owner string, store Store, newID IDGenerator) (*Cart, error) {
	lines, err := store.Load(ctx, owner)
	if err != nil {
		return nil, err
	}
	return &Cart{owner: owner, lines: lines, store: store, newID: newID}, nil
}

// AddToCart adds quantity units of the given product/size/color. When a
// line with the same (product id, size, color) tuple already exists its
// quantity is incremented instead of a second line appearing. Size and
// color are trusted here; callers validate them against the product.
func (c *Cart) AddToCart(ctx context.Context, product models.Product, quantity int, selectedSize, selectedColor string) (LineItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		line := &c.lines[i]
		if line.Product.ID == product.ID &&
			line.SelectedSize == selectedSize &&
			line.SelectedColor == selectedColor {
			line.Quantity += quantity
			return *line, c.persist(ctx)
		}
	}

	newLine := LineItem{
		ID:            c.newID(),
		Product:       product,
		Quantity:      quantity,
		SelectedSize:  selectedSize,
		SelectedColor: selectedColor,
	}
	c.lines = append(c.lines, newLine)
	return newLine, c.persist(ctx)
}

// RemoveFromCart deletes the line with the given id. Removing an absent
// line is a no-op, not an error.
func (c *Cart) RemoveFromCart(ctx context.Context, lineID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return c.persist(ctx)
		}
	}
	return nil
}

// UpdateQuantity replaces the line's quantity. Quantities below 1 are
// rejected silently and leave the cart untouched.
func (c *Cart) UpdateQuantity(ctx context.Context, lineID string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].ID == lineID {
			c.lines[i].Quantity = quantity
			return c.persist(ctx)
		}
	}
	return nil
}

// ClearCart empties the cart.
func (c *Cart) ClearCart(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = nil
	return c.persist(ctx)
}

// TotalPrice is Σ(unit price × quantity) over current lines, recomputed
// on every call. Carts are small; caching is not worth the staleness.
func (c *Cart) TotalPrice() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total float64
	for _, line := range c.lines {
		total += line.Product.Price * float64(line.Quantity)
	}
	return total
}

// TotalItems is the sum of quantities over current lines.
func (c *Cart) TotalItems() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int
	for _, line := range c.lines {
		total += line.Quantity
	}
	return total
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]LineItem, len(c.lines))
	copy(out, c.lines)
	return out
}

// persist writes the full snapshot. Callers hold c.mu.
func (c *Cart) persist(ctx context.Context) error {
	return c.store.Save(ctx, c.owner, c.lines)
}
