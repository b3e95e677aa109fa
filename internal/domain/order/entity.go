// internal/domain/order/entity.go
package order

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/your-org/restaurant-backend/internal/domain/pricing"
)

// PaymentType represents how the customer will pay on delivery
type PaymentType string

const (
	PaymentPix    PaymentType = "PIX"
	PaymentCash   PaymentType = "CASH"
	PaymentCredit PaymentType = "CREDIT"
	PaymentDebit  PaymentType = "DEBIT"
)

// IsValid reports whether the payment type is one of the known values
func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentPix, PaymentCash, PaymentCredit, PaymentDebit:
		return true
	}
	return false
}

// PaymentSnapshot is the payment method captured at checkout. ChangeFor
// is only meaningful for cash payments.
type PaymentSnapshot struct {
	Type      PaymentType `gorm:"size:10;not null" json:"type"`
	ChangeFor *int64      `json:"change_for,omitempty"` // In cents
}

// AddressSnapshot is a by-value copy of the delivery address taken at
// checkout. Later edits or deletion of the customer's saved address never
// alter a historical order.
type AddressSnapshot struct {
	Label        string `gorm:"size:100" json:"label"`
	Street       string `gorm:"size:255" json:"street"`
	Number       string `gorm:"size:20" json:"number"`
	Complement   string `gorm:"size:255" json:"complement,omitempty"`
	Neighborhood string `gorm:"size:100" json:"neighborhood"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:2" json:"state"`
	PostalCode   string `gorm:"size:9" json:"postal_code,omitempty"`
}

// Order represents a placed order. Everything except Status, the timeline
// and UpdatedAt is immutable after creation.
type Order struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	DisplayCode   string          `gorm:"uniqueIndex;not null;size:20" json:"display_code"`
	CustomerID    uint            `gorm:"not null;index" json:"customer_id"`
	CustomerName  string          `gorm:"not null;size:255" json:"customer_name"`
	CustomerPhone string          `gorm:"not null;size:20" json:"customer_phone"`
	Address       AddressSnapshot `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Payment       PaymentSnapshot `gorm:"embedded;embeddedPrefix:payment_" json:"payment"`

	// Financial information, in cents, fixed at creation
	Subtotal    int64 `gorm:"not null" json:"subtotal"`
	DeliveryFee int64 `gorm:"not null" json:"delivery_fee"`
	Total       int64 `gorm:"not null" json:"total"`

	Status Status `gorm:"not null;default:'PENDING'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items    []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
	Timeline []StatusEvent `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"timeline,omitempty"`
}

// OrderItem mirrors a cart item with its own identity and prices fixed at
// order time; it is never recomputed against live product data.
type OrderItem struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	OrderID         uint            `gorm:"not null;index" json:"order_id"`
	ProductID       uint            `gorm:"not null;index" json:"product_id"`
	ProductName     string          `gorm:"not null;size:255" json:"product_name"`
	ProductImage    string          `gorm:"size:500" json:"product_image"`
	Quantity        int             `gorm:"not null" json:"quantity"`
	UnitPrice       int64           `gorm:"not null" json:"unit_price"` // In cents
	LineTotal       int64           `gorm:"not null" json:"line_total"` // UnitPrice * Quantity
	SelectedOptions SelectedOptions `gorm:"type:jsonb" json:"selected_options"`
	Notes           string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// StatusEvent is one entry in an order's append-only timeline
type StatusEvent struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OrderID   uint      `gorm:"not null;index" json:"order_id"`
	Status    Status    `gorm:"not null;size:20" json:"status"`
	Note      string    `gorm:"type:text" json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Counter backs the sequential display code. A single row is atomically
// incremented inside the order-creation transaction.
type Counter struct {
	ID    uint  `gorm:"primaryKey"`
	Value int64 `gorm:"not null;default:0"`
}

// TableName overrides
func (Order) TableName() string       { return "orders" }
func (OrderItem) TableName() string   { return "order_items" }
func (StatusEvent) TableName() string { return "order_status_events" }
func (Counter) TableName() string     { return "order_counters" }

// SelectedOptions stores option snapshots as a JSON column
type SelectedOptions []pricing.SelectedOption

// Value implements driver.Valuer
func (o SelectedOptions) Value() (driver.Value, error) {
	if o == nil {
		return "[]", nil
	}
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("failed to encode selected options: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (o *SelectedOptions) Scan(value interface{}) error {
	if value == nil {
		*o = SelectedOptions{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for selected options: %T", value)
	}

	return json.Unmarshal(data, o)
}

// GetFormattedTotal returns the total amount as float
func (o *Order) GetFormattedTotal() float64 {
	return float64(o.Total) / 100
}
