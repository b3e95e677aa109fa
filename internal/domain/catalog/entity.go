// internal/domain/catalog/entity.go
package catalog

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Category represents a menu category
type Category struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Slug      string         `gorm:"uniqueIndex;not null;size:255" json:"slug"`
	Icon      string         `gorm:"size:255" json:"icon"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	IsActive  bool           `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Products []Product `gorm:"foreignKey:CategoryID" json:"products,omitempty"`
}

// Product represents a menu item
type Product struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	CategoryID      uint           `gorm:"not null;index" json:"category_id"`
	Name            string         `gorm:"not null;size:255" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	Price           int64          `gorm:"not null" json:"price"` // Base price in cents
	Image           string         `gorm:"size:500" json:"image"`
	IsActive        bool           `gorm:"default:true" json:"is_active"`
	IsPopular       bool           `gorm:"default:false" json:"is_popular"`
	PreparationTime int            `gorm:"default:0" json:"preparation_time"` // In minutes
	SortOrder       int            `gorm:"default:0" json:"sort_order"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Category     Category      `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"category,omitempty"`
	OptionGroups []OptionGroup `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"option_groups,omitempty"`
}

// OptionGroup represents a named set of options on a product with
// selection cardinality constraints
type OptionGroup struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ProductID     uint      `gorm:"not null;index" json:"product_id"`
	Name          string    `gorm:"not null;size:255" json:"name"`
	IsRequired    bool      `gorm:"default:false" json:"is_required"`
	MinSelections int       `gorm:"default:0" json:"min_selections"`
	MaxSelections int       `gorm:"default:1" json:"max_selections"`
	SortOrder     int       `gorm:"default:0" json:"sort_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relationships
	Options []Option `gorm:"foreignKey:GroupID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"options,omitempty"`
}

// Option represents a selectable option inside a group
type Option struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	GroupID    uint      `gorm:"not null;index" json:"group_id"`
	Name       string    `gorm:"not null;size:255" json:"name"`
	ExtraPrice int64     `gorm:"default:0" json:"extra_price"` // Price delta in cents
	IsActive   bool      `gorm:"default:true" json:"is_active"`
	SortOrder  int       `gorm:"default:0" json:"sort_order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// TableName overrides
func (Category) TableName() string    { return "categories" }
func (Product) TableName() string     { return "products" }
func (OptionGroup) TableName() string { return "option_groups" }
func (Option) TableName() string      { return "options" }

// Validate checks the group's cardinality constraints
func (g *OptionGroup) Validate() error {
	if g.MinSelections < 0 {
		return fmt.Errorf("min_selections must not be negative")
	}
	if g.MaxSelections < 1 {
		return fmt.Errorf("max_selections must be at least 1")
	}
	if g.MinSelections > g.MaxSelections {
		return fmt.Errorf("min_selections (%d) must not exceed max_selections (%d)",
			g.MinSelections, g.MaxSelections)
	}
	if g.IsRequired && g.MinSelections < 1 {
		return fmt.Errorf("required groups must have min_selections of at least 1")
	}
	return nil
}

// IsSingleSelect reports whether the group behaves as an exclusive choice
func (g *OptionGroup) IsSingleSelect() bool {
	return g.MaxSelections == 1
}

// ActiveOptions returns only the options that can currently be selected
func (g *OptionGroup) ActiveOptions() []Option {
	active := make([]Option, 0, len(g.Options))
	for _, opt := range g.Options {
		if opt.IsActive {
			active = append(active, opt)
		}
	}
	return active
}

// GetFormattedPrice returns the base price as float
func (p *Product) GetFormattedPrice() float64 {
	return float64(p.Price) / 100
}
