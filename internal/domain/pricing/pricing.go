// internal/domain/pricing/pricing.go
package pricing

// All monetary values are int64 amounts in cents. Floating point is never
// used for money anywhere in this package.

// SelectedOption is a snapshot of a product option chosen for a cart or
// order item. Name and ExtraPrice are copied at selection time so later
// catalog edits do not change what the customer agreed to pay.
type SelectedOption struct {
	GroupID    uint   `json:"group_id"`
	OptionID   uint   `json:"option_id"`
	Name       string `json:"name"`
	ExtraPrice int64  `json:"extra_price"` // In cents
}

// UnitTotal returns the price of a single unit: base price plus the extra
// price of every selected option. Duplicate option ids are summed as given;
// deduplication is a selection-validation concern, not a pricing one.
func UnitTotal(basePrice int64, options []SelectedOption) int64 {
	total := basePrice
	for _, opt := range options {
		total += opt.ExtraPrice
	}
	return total
}

// LineTotal returns the total for a line: unit total times quantity.
// Quantity must be positive; callers are responsible for clamping or
// removing non-positive quantities before pricing.
func LineTotal(unitTotal int64, quantity int) int64 {
	return unitTotal * int64(quantity)
}

// Totals returns the cart-level subtotal and total for the given line
// totals and delivery fee.
func Totals(lineTotals []int64, deliveryFee int64) (subtotal, total int64) {
	for _, lt := range lineTotals {
		subtotal += lt
	}
	return subtotal, subtotal + deliveryFee
}
