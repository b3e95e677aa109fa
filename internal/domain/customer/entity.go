// internal/domain/customer/entity.go
package customer

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Customer represents a storefront customer
type Customer struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null;size:255" json:"name"`
	Phone     string         `gorm:"uniqueIndex;not null;size:20" json:"phone"`
	Email     string         `gorm:"size:255" json:"email,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Addresses []Address `gorm:"foreignKey:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"addresses,omitempty"`
}

// Address represents a customer delivery address
type Address struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	CustomerID   uint      `gorm:"not null;index" json:"customer_id"`
	Label        string    `gorm:"size:100" json:"label"` // e.g. "Casa", "Trabalho"
	Street       string    `gorm:"not null;size:255" json:"street"`
	Number       string    `gorm:"not null;size:20" json:"number"`
	Complement   string    `gorm:"size:255" json:"complement,omitempty"`
	Neighborhood string    `gorm:"not null;size:100" json:"neighborhood"`
	City         string    `gorm:"not null;size:100" json:"city"`
	State        string    `gorm:"size:2" json:"state"`
	PostalCode   string    `gorm:"size:9" json:"postal_code,omitempty"`
	IsDefault    bool      `gorm:"default:false" json:"is_default"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName overrides
func (Customer) TableName() string { return "customers" }
func (Address) TableName() string  { return "addresses" }

// BeforeCreate normalizes customer data before insertion
func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return nil
}

// DefaultAddress returns the customer's default address, or nil when the
// customer has no addresses
func (c *Customer) DefaultAddress() *Address {
	for i := range c.Addresses {
		if c.Addresses[i].IsDefault {
			return &c.Addresses[i]
		}
	}
	return nil
}
