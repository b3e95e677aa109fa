// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/your-org/restaurant-backend/internal/config"
	"gorm.io/gorm"
)

// ErrOrderNotFound is returned when an order id does not exist
var ErrOrderNotFound = errors.New("order not found")

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ListRequest represents order list query parameters
type ListRequest struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
	Status     Status `form:"status"`
	CustomerID uint   `form:"customer_id"`
	DateFrom   string `form:"date_from"`
	DateTo     string `form:"date_to"`
}

// ListResponse represents orders with pagination
type ListResponse struct {
	Orders     []Order    `json:"orders"`
	Pagination Pagination `json:"pagination"`
}

// Pagination represents pagination information
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// DashboardStats represents the admin dashboard summary
type DashboardStats struct {
	OrdersToday     int64 `json:"orders_today"`
	RevenueToday    int64 `json:"revenue_today"` // In cents, canceled orders excluded
	PendingOrders   int64 `json:"pending_orders"`
	PreparingOrders int64 `json:"preparing_orders"`
	DeliveredOrders int64 `json:"delivered_orders"`
	CanceledOrders  int64 `json:"canceled_orders"`
}

// GetOrder retrieves a single order with items and timeline. The timeline
// is returned in chronological order.
func (s *Service) GetOrder(id uint) (*Order, error) {
	var o Order
	result := s.db.
		Preload("Items").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		First(&o, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}

	return &o, nil
}

// List retrieves orders with filtering and pagination for the back office
func (s *Service) List(req *ListRequest) (*ListResponse, error) {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 || req.Limit > 100 {
		req.Limit = 20
	}

	query := s.db.Model(&Order{}).
		Preload("Items").
		Preload("Timeline", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		})

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.CustomerID > 0 {
		query = query.Where("customer_id = ?", req.CustomerID)
	}
	if req.DateFrom != "" {
		query = query.Where("created_at >= ?", req.DateFrom)
	}
	if req.DateTo != "" {
		query = query.Where("created_at <= ?", req.DateTo)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []Order
	offset := (req.Page - 1) * req.Limit
	if err := query.Order("created_at DESC").Offset(offset).Limit(req.Limit).Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	return &ListResponse{
		Orders: orders,
		Pagination: Pagination{
			Page:       req.Page,
			Limit:      req.Limit,
			Total:      total,
			TotalPages: totalPages,
			HasNext:    req.Page < totalPages,
			HasPrev:    req.Page > 1,
		},
	}, nil
}

// GetCustomerOrders retrieves orders for a specific customer
func (s *Service) GetCustomerOrders(customerID uint, page, limit int) (*ListResponse, error) {
	return s.List(&ListRequest{
		Page:       page,
		Limit:      limit,
		CustomerID: customerID,
	})
}

// AdvanceStatus moves an order to a new status, enforcing the transition
// table, and appends the event to the timeline. The timeline is
// append-only; events are never removed or reordered.
func (s *Service) AdvanceStatus(orderID uint, newStatus Status, note string) (*Order, error) {
	if !newStatus.IsValid() {
		return nil, fmt.Errorf("unknown order status %q", newStatus)
	}

	var o Order
	if err := s.db.First(&o, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", err)
	}

	if !CanTransition(o.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, newStatus)
	}

	now := time.Now().UTC()

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&o).Updates(map[string]interface{}{
		"status":     newStatus,
		"updated_at": now,
	}).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	event := StatusEvent{
		OrderID:   orderID,
		Status:    newStatus,
		Note:      note,
		CreatedAt: now,
	}
	if err := tx.Create(&event).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create status event: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit status change: %w", err)
	}

	return s.GetOrder(orderID)
}

// Cancel cancels an order with a reason
func (s *Service) Cancel(orderID uint, reason string) (*Order, error) {
	note := "Order canceled"
	if reason != "" {
		note = fmt.Sprintf("Order canceled: %s", reason)
	}
	return s.AdvanceStatus(orderID, StatusCanceled, note)
}

// GetDashboardStats computes the admin dashboard summary
func (s *Service) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}
	startOfDay := time.Now().UTC().Truncate(24 * time.Hour)

	if err := s.db.Model(&Order{}).
		Where("created_at >= ?", startOfDay).
		Count(&stats.OrdersToday).Error; err != nil {
		return nil, fmt.Errorf("failed to count today's orders: %w", err)
	}

	var revenue struct {
		Total int64
	}
	if err := s.db.Model(&Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Where("created_at >= ? AND status <> ?", startOfDay, StatusCanceled).
		Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("failed to sum today's revenue: %w", err)
	}
	stats.RevenueToday = revenue.Total

	counts := []struct {
		status Status
		dest   *int64
	}{
		{StatusPending, &stats.PendingOrders},
		{StatusPreparing, &stats.PreparingOrders},
		{StatusDelivered, &stats.DeliveredOrders},
		{StatusCanceled, &stats.CanceledOrders},
	}
	for _, c := range counts {
		if err := s.db.Model(&Order{}).
			Where("status = ?", c.status).
			Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s orders: %w", c.status, err)
		}
	}

	return stats, nil
}
