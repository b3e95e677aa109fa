// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"time"

	"github.com/your-org/restaurant-backend/internal/domain/pricing"
)

// ErrItemNotFound is returned when a cart mutation addresses an item id
// that is not in the cart
var ErrItemNotFound = errors.New("cart item not found")

// Item represents one line in a cart. Product name, image, base price and
// option data are snapshots taken at add time, so later catalog edits do
// not retroactively change an existing cart.
type Item struct {
	ID              string                   `json:"id"`
	ProductID       uint                     `json:"product_id"`
	ProductName     string                   `json:"product_name"`
	ProductImage    string                   `json:"product_image"`
	Quantity        int                      `json:"quantity"`
	BasePrice       int64                    `json:"base_price"` // In cents, snapshot
	SelectedOptions []pricing.SelectedOption `json:"selected_options"`
	Notes           string                   `json:"notes,omitempty"`
	UnitTotal       int64                    `json:"unit_total"` // Derived, in cents
	LineTotal       int64                    `json:"line_total"` // Derived, in cents
	AddedAt         time.Time                `json:"added_at"`
}

// Cart represents a shopping cart stored per session
type Cart struct {
	SessionID   string    `json:"session_id"`
	Items       []Item    `json:"items"`
	Subtotal    int64     `json:"subtotal"`     // Derived, in cents
	DeliveryFee int64     `json:"delivery_fee"` // In cents
	Total       int64     `json:"total"`        // Derived, in cents
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// New creates an empty cart for a session
func New(sessionID string, deliveryFee int64) *Cart {
	now := time.Now().UTC()
	c := &Cart{
		SessionID:   sessionID,
		Items:       []Item{},
		DeliveryFee: deliveryFee,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	c.recalculate()
	return c
}

// AddItem appends an item to the cart and recomputes totals. The item's
// unit and line totals are recomputed here regardless of what the caller
// set, so the derived fields can never go stale.
func (c *Cart) AddItem(item Item) {
	recalculateItem(&item)
	c.Items = append(c.Items, item)
	c.touch()
}

// UpdateQuantity sets the quantity of an item. A quantity of zero or less
// removes the item entirely.
func (c *Cart) UpdateQuantity(itemID string, quantity int) error {
	if quantity <= 0 {
		return c.RemoveItem(itemID)
	}

	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			recalculateItem(&c.Items[i])
			c.touch()
			return nil
		}
	}

	return ErrItemNotFound
}

// RemoveItem removes an item from the cart
func (c *Cart) RemoveItem(itemID string) error {
	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.touch()
			return nil
		}
	}

	return ErrItemNotFound
}

// Clear empties the cart, keeping the configured delivery fee
func (c *Cart) Clear() {
	c.Items = []Item{}
	c.touch()
}

// IsEmpty reports whether the cart has no items
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount returns the sum of all item quantities
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

func (c *Cart) touch() {
	c.recalculate()
	c.UpdatedAt = time.Now().UTC()
}

// recalculate recomputes subtotal and total from the current item list
func (c *Cart) recalculate() {
	lineTotals := make([]int64, len(c.Items))
	for i, item := range c.Items {
		lineTotals[i] = item.LineTotal
	}
	c.Subtotal, c.Total = pricing.Totals(lineTotals, c.DeliveryFee)
}

// recalculateItem recomputes the derived money fields from the item's
// snapshot fields. Idempotent: applying it twice yields the same result.
func recalculateItem(item *Item) {
	item.UnitTotal = pricing.UnitTotal(item.BasePrice, item.SelectedOptions)
	item.LineTotal = pricing.LineTotal(item.UnitTotal, item.Quantity)
}
