package cart

import (
	"errors"
	"sync"

	"github.com/goldcrust/storefront/internal/models"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Line pairs a product with a quantity. The product is a snapshot copy; the
// cart never mutates product data.
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// LineTotal returns unit price times quantity for this line.
func (l Line) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart holds the line items for one storefront session, insertion-ordered by
// first add. At most one line exists per product id; a quantity reduced to
// zero removes the line entirely. Totals are always recomputed from the
// lines, never cached.
//
// Handlers for the same session may run concurrently, so all access goes
// through an internal lock.
type Cart struct {
	mu    sync.RWMutex
	lines []Line
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem merges quantity into the existing line for the product, or appends
// a new line at the end of the sequence. Non-positive quantities are
// rejected.
func (c *Cart) AddItem(product models.Product, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID == product.ID {
			c.lines[i].Quantity += quantity
			return nil
		}
	}

	c.lines = append(c.lines, Line{Product: product, Quantity: quantity})
	return nil
}

// SetQuantity replaces the quantity of the line for productID, preserving its
// position. A quantity of zero or below removes the line; setting an absent
// product is a no-op.
func (c *Cart) SetQuantity(productID string, quantity int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.lines {
		if c.lines[i].Product.ID != productID {
			continue
		}
		if quantity <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
		} else {
			c.lines[i].Quantity = quantity
		}
		return
	}
}

// RemoveItem removes the line for productID. Equivalent to SetQuantity(id, 0).
func (c *Cart) RemoveItem(productID string) {
	c.SetQuantity(productID, 0)
}

// Total returns the sum of unit price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	c.mu.RLock()
	defer c.mu.RUnlock()

	total := decimal.Zero
	for _, line := range c.lines {
		total = total.Add(line.LineTotal())
	}
	return total
}

// ItemCount returns the sum of quantities over all lines.
func (c *Cart) ItemCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.lines)
}

// Lines returns a copy of the current line sequence.
func (c *Cart) Lines() []Line {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines := make([]Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Clear empties the cart. Called once, after a confirmed order is
// acknowledged.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lines = nil
}
