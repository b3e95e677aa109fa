// internal/domain/checkout/service.go
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/cart"
	"github.com/your-org/restaurant-backend/internal/domain/customer"
	"github.com/your-org/restaurant-backend/internal/domain/order"
	"gorm.io/gorm"
)

var (
	// ErrEmptyCart is returned when checking out a cart with no items
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidPayment is returned for an unknown payment type or a
	// change amount on a non-cash payment
	ErrInvalidPayment = errors.New("invalid payment method")
)

// Service materializes immutable orders from carts at checkout
type Service struct {
	db          *gorm.DB
	config      *config.Config
	cartService *cart.Service
}

// NewService creates a new checkout service
func NewService(db *gorm.DB, cfg *config.Config, cartService *cart.Service) *Service {
	return &Service{
		db:          db,
		config:      cfg,
		cartService: cartService,
	}
}

// PaymentRequest represents the chosen payment method
type PaymentRequest struct {
	Type      string `json:"type" binding:"required,oneof=PIX CASH CREDIT DEBIT"`
	ChangeFor *int64 `json:"change_for"` // In cents, cash only
}

// PlaceOrderRequest represents checkout data
type PlaceOrderRequest struct {
	CustomerID uint           `json:"customer_id" binding:"required"`
	AddressID  uint           `json:"address_id" binding:"required"`
	Payment    PaymentRequest `json:"payment" binding:"required"`
	Notes      string         `json:"notes"`
}

// PlaceOrder creates an order from the session's cart. Item prices,
// address and payment are snapshotted by value; nothing is recomputed
// from live catalog data. The cart is NOT cleared here: the caller clears
// it only after creation succeeds, so a failed write never loses the
// cart.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string, req *PlaceOrderRequest) (*order.Order, error) {
	c, err := s.cartService.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	paymentType := order.PaymentType(req.Payment.Type)
	if !paymentType.IsValid() {
		return nil, fmt.Errorf("%w: unknown type %q", ErrInvalidPayment, req.Payment.Type)
	}
	if req.Payment.ChangeFor != nil && paymentType != order.PaymentCash {
		return nil, fmt.Errorf("%w: change amount only applies to cash payments", ErrInvalidPayment)
	}

	var cust customer.Customer
	if err := s.db.First(&cust, req.CustomerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, customer.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve customer: %w", err)
	}

	var addr customer.Address
	result := s.db.Where("id = ? AND customer_id = ?", req.AddressID, req.CustomerID).First(&addr)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, customer.ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to retrieve address: %w", result.Error)
	}

	now := time.Now().UTC()

	var created order.Order
	err = s.db.Transaction(func(tx *gorm.DB) error {
		code, err := s.nextDisplayCode(tx)
		if err != nil {
			return err
		}

		created = order.Order{
			DisplayCode:   code,
			CustomerID:    cust.ID,
			CustomerName:  cust.Name,
			CustomerPhone: cust.Phone,
			Address: order.AddressSnapshot{
				Label:        addr.Label,
				Street:       addr.Street,
				Number:       addr.Number,
				Complement:   addr.Complement,
				Neighborhood: addr.Neighborhood,
				City:         addr.City,
				State:        addr.State,
				PostalCode:   addr.PostalCode,
			},
			Payment: order.PaymentSnapshot{
				Type:      paymentType,
				ChangeFor: copyChangeFor(req.Payment.ChangeFor),
			},
			Subtotal:    c.Subtotal,
			DeliveryFee: c.DeliveryFee,
			Total:       c.Total,
			Status:      order.StatusPending,
			Notes:       req.Notes,
			CreatedAt:   now,
			UpdatedAt:   now,
		}

		for _, item := range c.Items {
			options := make(order.SelectedOptions, len(item.SelectedOptions))
			copy(options, item.SelectedOptions)

			created.Items = append(created.Items, order.OrderItem{
				ProductID:       item.ProductID,
				ProductName:     item.ProductName,
				ProductImage:    item.ProductImage,
				Quantity:        item.Quantity,
				UnitPrice:       item.UnitTotal,
				LineTotal:       item.LineTotal,
				SelectedOptions: options,
				Notes:           item.Notes,
				CreatedAt:       now,
			})
		}

		if err := tx.Create(&created).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}

		// Seed the timeline with the initial event
		event := order.StatusEvent{
			OrderID:   created.ID,
			Status:    order.StatusPending,
			Note:      "Order placed",
			CreatedAt: now,
		}
		if err := tx.Create(&event).Error; err != nil {
			return fmt.Errorf("failed to create initial status event: %w", err)
		}

		created.Timeline = []order.StatusEvent{event}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

// FormatDisplayCode renders a counter value as a human-friendly order
// code, e.g. prefix "ER" and width 3 give ER-001, ER-002, ...
func FormatDisplayCode(prefix string, width int, value int64) string {
	return fmt.Sprintf("%s-%0*d", prefix, width, value)
}

// nextDisplayCode atomically increments the persistent counter and
// formats the result. The increment happens inside the order-creation
// transaction, so a failed order never consumes a code.
func (s *Service) nextDisplayCode(tx *gorm.DB) (string, error) {
	var value int64
	err := tx.Raw("UPDATE order_counters SET value = value + 1 WHERE id = 1 RETURNING value").
		Scan(&value).Error
	if err != nil {
		return "", fmt.Errorf("failed to increment order counter: %w", err)
	}

	if value == 0 {
		// Counter row missing on a fresh database
		if err := tx.Create(&order.Counter{ID: 1, Value: 1}).Error; err != nil {
			return "", fmt.Errorf("failed to initialize order counter: %w", err)
		}
		value = 1
	}

	return FormatDisplayCode(s.config.Restaurant.OrderCodePrefix, s.config.Restaurant.OrderCodeWidth, value), nil
}

func copyChangeFor(v *int64) *int64 {
	if v == nil {
		return nil
	}
	copied := *v
	return &copied
}
