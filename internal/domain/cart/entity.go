// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"fmt"
	"strings"

	"wingx/internal/domain/product"
)

var ErrInvalidItem = errors.New("cart: invalid item")

// Sentinel variant values used when a product defines no sizes/colors.
const (
	NoSize  = "nosize"
	NoColor = "nocolor"
)

// Item is one line in the cart: a product snapshot plus the selected variant
// and a quantity. Identity is the composite key (productId, size, color);
// two entries are the same line iff their keys match.
type Item struct {
	CartItemID    string          `json:"cartItemId"`
	Product       product.Product `json:"product"`
	SelectedSize  string          `json:"selectedSize,omitempty"`
	SelectedColor string          `json:"selectedColor,omitempty"`
	Quantity      int             `json:"quantity"`
}

// ItemKey builds the composite line identity. Empty variants map to the
// explicit sentinels so "no size" never collides with a real size value.
func ItemKey(productID, size, color string) string {
	if strings.TrimSpace(size) == "" {
		size = NoSize
	}
	if strings.TrimSpace(color) == "" {
		color = NoColor
	}
	return fmt.Sprintf("%s-%s-%s", strings.TrimSpace(productID), size, color)
}

// AddResult distinguishes a brand-new line from a merged quantity bump,
// so callers can signal "item added" vs "quantity updated".
type AddResult int

const (
	ResultAdded AddResult = iota
	ResultQuantityUpdated
)

// Cart is the in-session collection of lines. It holds no persistence or
// locking concerns; the owning service serializes access and storage.
type Cart struct {
	Items []Item `json:"items"`
}

// Add merges into an existing line (quantity +1) or appends a new line with
// quantity 1. Variant preconditions ("size required if the product defines
// sizes") are enforced by the caller, not here.
func (c *Cart) Add(p product.Product, size, color string) (AddResult, error) {
	if err := p.Validate(); err != nil {
		return ResultAdded, fmt.Errorf("%w: %v", ErrInvalidItem, err)
	}

	key := ItemKey(p.ID, size, color)
	for i := range c.Items {
		if c.Items[i].CartItemID == key {
			c.Items[i].Quantity++
			return ResultQuantityUpdated, nil
		}
	}

	c.Items = append(c.Items, Item{
		CartItemID:    key,
		Product:       p,
		SelectedSize:  strings.TrimSpace(size),
		SelectedColor: strings.TrimSpace(color),
		Quantity:      1,
	})
	return ResultAdded, nil
}

// Remove drops the matching line. Removing an absent line is a no-op.
func (c *Cart) Remove(cartItemID string) {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity applies a delta, clamped so quantity never drops below 1.
// Unknown ids are a no-op.
func (c *Cart) UpdateQuantity(cartItemID string, delta int) {
	for i := range c.Items {
		if c.Items[i].CartItemID == cartItemID {
			q := c.Items[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			c.Items[i].Quantity = q
			return
		}
	}
}

// Clear empties the collection.
func (c *Cart) Clear() {
	c.Items = nil
}

// TotalItems is the sum of quantities across all lines.
func (c *Cart) TotalItems() int {
	total := 0
	for _, it := range c.Items {
		total += it.Quantity
	}
	return total
}

// TotalPrice is the sum of price×quantity across all lines, recomputed on
// every call.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, it := range c.Items {
		total += it.Product.Price * float64(it.Quantity)
	}
	return total
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
