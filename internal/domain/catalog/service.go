// internal/domain/catalog/service.go
package catalog

import (
	"errors"
	"fmt"

	"github.com/your-org/restaurant-backend/internal/config"
	"gorm.io/gorm"
)

var (
	// ErrCategoryNotFound is returned when a category id does not exist
	ErrCategoryNotFound = errors.New("category not found")
	// ErrProductNotFound is returned when a product id does not exist
	ErrProductNotFound = errors.New("product not found")
	// ErrOptionGroupNotFound is returned when an option group id does not exist
	ErrOptionGroupNotFound = errors.New("option group not found")
	// ErrOptionNotFound is returned when an option id does not exist
	ErrOptionNotFound = errors.New("option not found")
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateProductRequest represents product creation data
type CreateProductRequest struct {
	CategoryID      uint   `json:"category_id" binding:"required"`
	Name            string `json:"name" binding:"required"`
	Description     string `json:"description"`
	Price           int64  `json:"price" binding:"required,min=0"` // In cents
	Image           string `json:"image"`
	IsActive        *bool  `json:"is_active"`
	IsPopular       bool   `json:"is_popular"`
	PreparationTime int    `json:"preparation_time" binding:"min=0"`
	SortOrder       int    `json:"sort_order"`
}

// UpdateProductRequest represents product update data
type UpdateProductRequest struct {
	CategoryID      *uint   `json:"category_id"`
	Name            *string `json:"name"`
	Description     *string `json:"description"`
	Price           *int64  `json:"price" binding:"omitempty,min=0"`
	Image           *string `json:"image"`
	IsActive        *bool   `json:"is_active"`
	IsPopular       *bool   `json:"is_popular"`
	PreparationTime *int    `json:"preparation_time" binding:"omitempty,min=0"`
	SortOrder       *int    `json:"sort_order"`
}

// CreateOptionGroupRequest represents option group creation data
type CreateOptionGroupRequest struct {
	Name          string                `json:"name" binding:"required"`
	IsRequired    bool                  `json:"is_required"`
	MinSelections int                   `json:"min_selections" binding:"min=0"`
	MaxSelections int                   `json:"max_selections" binding:"required,min=1"`
	SortOrder     int                   `json:"sort_order"`
	Options       []CreateOptionRequest `json:"options"`
}

// CreateOptionRequest represents option creation data
type CreateOptionRequest struct {
	Name       string `json:"name" binding:"required"`
	ExtraPrice int64  `json:"extra_price" binding:"min=0"` // In cents
	SortOrder  int    `json:"sort_order"`
}

// GetMenu returns the active categories with their active products and
// option groups, ordered for storefront display
func (s *Service) GetMenu() ([]Category, error) {
	var categories []Category
	err := s.db.
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Preload("Products", func(db *gorm.DB) *gorm.DB {
			return db.Where("is_active = ?", true).Order("sort_order ASC, name ASC")
		}).
		Preload("Products.OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("Products.OptionGroups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve menu: %w", err)
	}

	return categories, nil
}

// GetCategories returns all categories for admin use
func (s *Service) GetCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// GetProduct retrieves a product with its option groups and options.
// When activeOnly is set, inactive products are treated as not found and
// inactive option groups keep their inactive options so the storefront
// never offers them.
func (s *Service) GetProduct(id uint, activeOnly bool) (*Product, error) {
	query := s.db.
		Preload("Category").
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("OptionGroups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Where("id = ?", id)

	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var product Product
	result := query.First(&product)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// ListProducts returns all products for admin use, including inactive ones
func (s *Service) ListProducts(categoryID uint) ([]Product, error) {
	query := s.db.
		Preload("Category").
		Preload("OptionGroups", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Preload("OptionGroups.Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("sort_order ASC, name ASC")

	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var products []Product
	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	return products, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *CreateProductRequest) (*Product, error) {
	var category Category
	if err := s.db.First(&category, req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", err)
	}

	product := Product{
		CategoryID:      req.CategoryID,
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Image:           req.Image,
		IsActive:        true,
		IsPopular:       req.IsPopular,
		PreparationTime: req.PreparationTime,
		SortOrder:       req.SortOrder,
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return &product, nil
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id uint, req *UpdateProductRequest) (*Product, error) {
	var product Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	updates := map[string]interface{}{}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsPopular != nil {
		updates["is_popular"] = *req.IsPopular
	}
	if req.PreparationTime != nil {
		updates["preparation_time"] = *req.PreparationTime
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	return s.GetProduct(id, false)
}

// ToggleProduct flips a product's active flag
func (s *Service) ToggleProduct(id uint) (*Product, error) {
	var product Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	if err := s.db.Model(&product).Update("is_active", !product.IsActive).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle product: %w", err)
	}

	product.IsActive = !product.IsActive
	return &product, nil
}

// DeleteProduct soft-deletes a product
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// CreateOptionGroup creates an option group with its options on a product
func (s *Service) CreateOptionGroup(productID uint, req *CreateOptionGroupRequest) (*OptionGroup, error) {
	var product Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	group := OptionGroup{
		ProductID:     productID,
		Name:          req.Name,
		IsRequired:    req.IsRequired,
		MinSelections: req.MinSelections,
		MaxSelections: req.MaxSelections,
		SortOrder:     req.SortOrder,
	}
	// Required groups imply at least one selection
	if group.IsRequired && group.MinSelections < 1 {
		group.MinSelections = 1
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	for _, optReq := range req.Options {
		group.Options = append(group.Options, Option{
			Name:       optReq.Name,
			ExtraPrice: optReq.ExtraPrice,
			IsActive:   true,
			SortOrder:  optReq.SortOrder,
		})
	}

	if err := s.db.Create(&group).Error; err != nil {
		return nil, fmt.Errorf("failed to create option group: %w", err)
	}

	return &group, nil
}

// DeleteOptionGroup removes an option group and its options
func (s *Service) DeleteOptionGroup(groupID uint) error {
	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Where("group_id = ?", groupID).Delete(&Option{}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete options: %w", err)
	}

	result := tx.Delete(&OptionGroup{}, groupID)
	if result.Error != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete option group: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return ErrOptionGroupNotFound
	}

	return tx.Commit().Error
}

// ToggleOption flips an option's active flag
func (s *Service) ToggleOption(optionID uint) (*Option, error) {
	var option Option
	if err := s.db.First(&option, optionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOptionNotFound
		}
		return nil, fmt.Errorf("failed to retrieve option: %w", err)
	}

	if err := s.db.Model(&option).Update("is_active", !option.IsActive).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle option: %w", err)
	}

	option.IsActive = !option.IsActive
	return &option, nil
}
