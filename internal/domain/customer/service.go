// internal/domain/customer/service.go
package customer

import (
	"errors"
	"fmt"

	"github.com/your-org/restaurant-backend/internal/config"
	"gorm.io/gorm"
)

var (
	// ErrCustomerNotFound is returned when a customer id does not exist
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrAddressNotFound is returned when an address id does not exist
	// for the given customer
	ErrAddressNotFound = errors.New("address not found")
	// ErrPhoneTaken is returned when registering a phone that is already
	// in use
	ErrPhoneTaken = errors.New("phone number already registered")
)

// Service handles customer business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new customer service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateCustomerRequest represents customer registration data
type CreateCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// CreateAddressRequest represents address creation data
type CreateAddressRequest struct {
	Label        string `json:"label"`
	Street       string `json:"street" binding:"required"`
	Number       string `json:"number" binding:"required"`
	Complement   string `json:"complement"`
	Neighborhood string `json:"neighborhood" binding:"required"`
	City         string `json:"city" binding:"required"`
	State        string `json:"state" binding:"omitempty,len=2"`
	PostalCode   string `json:"postal_code"`
	IsDefault    bool   `json:"is_default"`
}

// UpdateAddressRequest represents address update data
type UpdateAddressRequest struct {
	Label        *string `json:"label"`
	Street       *string `json:"street"`
	Number       *string `json:"number"`
	Complement   *string `json:"complement"`
	Neighborhood *string `json:"neighborhood"`
	City         *string `json:"city"`
	State        *string `json:"state" binding:"omitempty,len=2"`
	PostalCode   *string `json:"postal_code"`
}

// CreateCustomer registers a new customer
func (s *Service) CreateCustomer(req *CreateCustomerRequest) (*Customer, error) {
	var existing Customer
	result := s.db.Where("phone = ?", req.Phone).First(&existing)
	if result.Error == nil {
		return nil, ErrPhoneTaken
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check phone: %w", result.Error)
	}

	c := Customer{
		Name:  req.Name,
		Phone: req.Phone,
		Email: req.Email,
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	return &c, nil
}

// GetCustomer retrieves a customer with addresses, default first
func (s *Service) GetCustomer(id uint) (*Customer, error) {
	var c Customer
	result := s.db.
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_default DESC, created_at ASC")
		}).
		First(&c, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve customer: %w", result.Error)
	}

	return &c, nil
}

// GetCustomerByPhone retrieves a customer by phone number
func (s *Service) GetCustomerByPhone(phone string) (*Customer, error) {
	var c Customer
	result := s.db.
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_default DESC, created_at ASC")
		}).
		Where("phone = ?", phone).
		First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to retrieve customer: %w", result.Error)
	}

	return &c, nil
}

// ListCustomers returns all customers for the admin back office
func (s *Service) ListCustomers(page, limit int) ([]Customer, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := s.db.Model(&Customer{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count customers: %w", err)
	}

	var customers []Customer
	err := s.db.
		Preload("Addresses", func(db *gorm.DB) *gorm.DB {
			return db.Order("is_default DESC, created_at ASC")
		}).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&customers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve customers: %w", err)
	}

	return customers, total, nil
}

// AddAddress creates a new address for a customer. A customer's first
// address always becomes the default; setting a new default unsets the
// previous one so at most one default exists at any time.
func (s *Service) AddAddress(customerID uint, req *CreateAddressRequest) (*Address, error) {
	if _, err := s.GetCustomer(customerID); err != nil {
		return nil, err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var count int64
	if err := tx.Model(&Address{}).Where("customer_id = ?", customerID).Count(&count).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to count addresses: %w", err)
	}

	address := Address{
		CustomerID:   customerID,
		Label:        req.Label,
		Street:       req.Street,
		Number:       req.Number,
		Complement:   req.Complement,
		Neighborhood: req.Neighborhood,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		IsDefault:    req.IsDefault || count == 0,
	}

	if address.IsDefault {
		if err := unsetDefaults(tx, customerID); err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	if err := tx.Create(&address).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create address: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit address: %w", err)
	}

	return &address, nil
}

// UpdateAddress updates an existing address
func (s *Service) UpdateAddress(customerID, addressID uint, req *UpdateAddressRequest) (*Address, error) {
	address, err := s.getAddress(customerID, addressID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.Street != nil {
		updates["street"] = *req.Street
	}
	if req.Number != nil {
		updates["number"] = *req.Number
	}
	if req.Complement != nil {
		updates["complement"] = *req.Complement
	}
	if req.Neighborhood != nil {
		updates["neighborhood"] = *req.Neighborhood
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.State != nil {
		updates["state"] = *req.State
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}

	if len(updates) > 0 {
		if err := s.db.Model(address).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update address: %w", err)
		}
	}

	return s.getAddress(customerID, addressID)
}

// SetDefaultAddress marks one address as default and unsets all others
func (s *Service) SetDefaultAddress(customerID, addressID uint) error {
	if _, err := s.getAddress(customerID, addressID); err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := unsetDefaults(tx, customerID); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Model(&Address{}).
		Where("id = ? AND customer_id = ?", addressID, customerID).
		Update("is_default", true).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to set default address: %w", err)
	}

	return tx.Commit().Error
}

// DeleteAddress removes an address. When the default is deleted and other
// addresses remain, the oldest remaining one is promoted to default.
func (s *Service) DeleteAddress(customerID, addressID uint) error {
	address, err := s.getAddress(customerID, addressID)
	if err != nil {
		return err
	}

	tx := s.db.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Delete(address).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to delete address: %w", err)
	}

	if address.IsDefault {
		var oldest Address
		result := tx.Where("customer_id = ?", customerID).
			Order("created_at ASC").
			First(&oldest)
		if result.Error == nil {
			if err := tx.Model(&oldest).Update("is_default", true).Error; err != nil {
				tx.Rollback()
				return fmt.Errorf("failed to promote default address: %w", err)
			}
		} else if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			tx.Rollback()
			return fmt.Errorf("failed to find remaining addresses: %w", result.Error)
		}
	}

	return tx.Commit().Error
}

func (s *Service) getAddress(customerID, addressID uint) (*Address, error) {
	var address Address
	result := s.db.Where("id = ? AND customer_id = ?", addressID, customerID).First(&address)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrAddressNotFound
		}
		return nil, fmt.Errorf("failed to retrieve address: %w", result.Error)
	}
	return &address, nil
}

func unsetDefaults(tx *gorm.DB, customerID uint) error {
	if err := tx.Model(&Address{}).
		Where("customer_id = ? AND is_default = ?", customerID, true).
		Update("is_default", false).Error; err != nil {
		return fmt.Errorf("failed to unset default addresses: %w", err)
	}
	return nil
}
