// internal/interfaces/http/handlers/customer.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/customer"
	"gorm.io/gorm"
)

// CustomerHandler handles customer and address endpoints
type CustomerHandler struct {
	customerService *customer.Service
	config          *config.Config
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(db *gorm.DB, cfg *config.Config) *CustomerHandler {
	return &CustomerHandler{
		customerService: customer.NewService(db, cfg),
		config:          cfg,
	}
}

// CreateCustomer handles POST /customers
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req customer.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	created, err := h.customerService.CreateCustomer(&req)
	if err != nil {
		if errors.Is(err, customer.ErrPhoneTaken) {
			c.JSON(http.StatusConflict, gin.H{
				"error": "Phone number already registered",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to create customer",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Customer created successfully",
		"data":    created,
	})
}

// GetCustomer handles GET /customers/:id
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	found, err := h.customerService.GetCustomer(id)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve customer",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer retrieved successfully",
		"data":    found,
	})
}

// GetCustomerByPhone handles GET /customers/lookup?phone=...
func (h *CustomerHandler) GetCustomerByPhone(c *gin.Context) {
	phone := c.Query("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Phone query parameter required",
		})
		return
	}

	found, err := h.customerService.GetCustomerByPhone(phone)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve customer",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customer retrieved successfully",
		"data":    found,
	})
}

// AdminListCustomers handles GET /admin/customers
func (h *CustomerHandler) AdminListCustomers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	customers, total, err := h.customerService.ListCustomers(page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to retrieve customers",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Customers retrieved successfully",
		"data": gin.H{
			"customers": customers,
			"total":     total,
			"page":      page,
			"limit":     limit,
		},
	})
}

// AddAddress handles POST /customers/:id/addresses
func (h *CustomerHandler) AddAddress(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req customer.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	address, err := h.customerService.AddAddress(customerID, &req)
	if err != nil {
		if errors.Is(err, customer.ErrCustomerNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to add address",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Address added successfully",
		"data":    address,
	})
}

// UpdateAddress handles PUT /customers/:id/addresses/:addressId
func (h *CustomerHandler) UpdateAddress(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}
	addressID, ok := parseAddressIDParam(c)
	if !ok {
		return
	}

	var req customer.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	address, err := h.customerService.UpdateAddress(customerID, addressID, &req)
	if err != nil {
		if errors.Is(err, customer.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Address not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to update address",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address updated successfully",
		"data":    address,
	})
}

// SetDefaultAddress handles PATCH /customers/:id/addresses/:addressId/default
func (h *CustomerHandler) SetDefaultAddress(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}
	addressID, ok := parseAddressIDParam(c)
	if !ok {
		return
	}

	if err := h.customerService.SetDefaultAddress(customerID, addressID); err != nil {
		if errors.Is(err, customer.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Address not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to set default address",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Default address updated successfully",
	})
}

// DeleteAddress handles DELETE /customers/:id/addresses/:addressId
func (h *CustomerHandler) DeleteAddress(c *gin.Context) {
	customerID, ok := parseIDParam(c)
	if !ok {
		return
	}
	addressID, ok := parseAddressIDParam(c)
	if !ok {
		return
	}

	if err := h.customerService.DeleteAddress(customerID, addressID); err != nil {
		if errors.Is(err, customer.ErrAddressNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Address not found",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to delete address",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Address deleted successfully",
	})
}

// parseAddressIDParam parses the :addressId path parameter
func parseAddressIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("addressId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid address ID",
		})
		return 0, false
	}
	return uint(id), true
}
