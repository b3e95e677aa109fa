// internal/domain/cart/service.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/catalog"
	"gorm.io/gorm"
)

// SelectionError is returned by AddItem when the chosen options do not
// satisfy the product's option group constraints. It carries one
// violation per failed group so the caller can surface all of them.
type SelectionError struct {
	Violations []catalog.Violation
}

func (e *SelectionError) Error() string {
	return fmt.Sprintf("selection violates %d option group constraint(s)", len(e.Violations))
}

// Service handles cart business logic backed by Redis, keyed by a
// caller-held session id
type Service struct {
	db          *gorm.DB
	redisClient *redis.Client
	config      *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *Service {
	return &Service{
		db:          db,
		redisClient: redisClient,
		config:      cfg,
	}
}

// AddItemRequest represents add to cart request
type AddItemRequest struct {
	ProductID       uint            `json:"product_id" binding:"required"`
	Quantity        int             `json:"quantity" binding:"required,min=1"`
	SelectedOptions map[uint][]uint `json:"selected_options"` // Group id -> option ids
	Notes           string          `json:"notes"`
}

// UpdateQuantityRequest represents update cart item request
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"min=0"`
}

// GetCart retrieves the cart for a session, returning an empty cart when
// none exists yet
func (s *Service) GetCart(ctx context.Context, sessionID string) (*Cart, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("session id required")
	}

	data, err := s.redisClient.Get(ctx, cartKey(sessionID)).Result()
	if errors.Is(err, redis.Nil) {
		return New(sessionID, s.config.Restaurant.DeliveryFee), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	var c Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}

	return &c, nil
}

// AddItem validates the selection against the product's option groups,
// builds a snapshot item and appends it to the session's cart
func (s *Service) AddItem(ctx context.Context, sessionID string, req *AddItemRequest) (*Cart, error) {
	// Load the product with its option groups; inactive products are not
	// orderable
	var product catalog.Product
	result := s.db.
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("OptionGroups.Options").
		Where("id = ? AND is_active = ?", req.ProductID, true).
		First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	validation := catalog.ValidateSelections(product.OptionGroups, req.SelectedOptions)
	if !validation.Valid {
		return nil, &SelectionError{Violations: validation.Violations}
	}

	item := Item{
		ID:              uuid.New().String(),
		ProductID:       product.ID,
		ProductName:     product.Name,
		ProductImage:    product.Image,
		Quantity:        req.Quantity,
		BasePrice:       product.Price,
		SelectedOptions: catalog.ResolveSelections(product.OptionGroups, req.SelectedOptions),
		Notes:           req.Notes,
		AddedAt:         time.Now().UTC(),
	}

	c, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	c.AddItem(item)

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// UpdateQuantity changes an item's quantity; zero removes the item
func (s *Service) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (*Cart, error) {
	c, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := c.UpdateQuantity(itemID, quantity); err != nil {
		return nil, err
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// RemoveItem removes an item from the session's cart
func (s *Service) RemoveItem(ctx context.Context, sessionID, itemID string) (*Cart, error) {
	c, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if err := c.RemoveItem(itemID); err != nil {
		return nil, err
	}

	if err := s.save(ctx, c); err != nil {
		return nil, err
	}

	return c, nil
}

// Clear removes the session's cart entirely
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.redisClient.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *Service) save(ctx context.Context, c *Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.redisClient.Set(ctx, cartKey(c.SessionID), data, s.config.Restaurant.CartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}
