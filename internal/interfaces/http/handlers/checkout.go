// internal/interfaces/http/handlers/checkout.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/domain/cart"
	"github.com/your-org/restaurant-backend/internal/domain/checkout"
	"github.com/your-org/restaurant-backend/internal/domain/customer"
	"github.com/your-org/restaurant-backend/internal/pkg/whatsapp"
	"gorm.io/gorm"
)

// CheckoutHandler handles order placement
type CheckoutHandler struct {
	checkoutService *checkout.Service
	cartService     *cart.Service
	config          *config.Config
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(db *gorm.DB, redisClient *redis.Client, cfg *config.Config) *CheckoutHandler {
	cartService := cart.NewService(db, redisClient, cfg)
	return &CheckoutHandler{
		checkoutService: checkout.NewService(db, cfg, cartService),
		cartService:     cartService,
		config:          cfg,
	}
}

// PlaceOrder handles POST /checkout
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	sessionID := c.GetHeader(sessionHeader)
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Cart session header required",
		})
		return
	}

	var req checkout.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	placed, err := h.checkoutService.PlaceOrder(c.Request.Context(), sessionID, &req)
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Cart is empty",
			})
		case errors.Is(err, checkout.ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid payment data",
			})
		case errors.Is(err, customer.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Customer not found",
			})
		case errors.Is(err, customer.ErrAddressNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Address not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Failed to place order",
			})
		}
		return
	}

	// The order is durable at this point; a failed cart clear must not
	// fail the checkout.
	if err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Warn("Failed to clear cart after checkout")
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully",
		"data": gin.H{
			"order":         placed,
			"whatsapp_link": whatsapp.OrderLink(h.config.Restaurant.Phone, placed),
		},
	})
}
