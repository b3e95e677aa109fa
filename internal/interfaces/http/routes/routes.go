// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/your-org/restaurant-backend/internal/config"
	"github.com/your-org/restaurant-backend/internal/interfaces/http/handlers"
	"github.com/your-org/restaurant-backend/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// SetupRoutes wires all API routes
func SetupRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	SetupAuthRoutes(rg, db, cfg)
	SetupStorefrontRoutes(rg, db, redisClient, cfg)
	SetupAdminRoutes(rg, db, cfg)
}

// SetupAuthRoutes sets up back-office authentication routes
func SetupAuthRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.RefreshToken)
	}
}

// SetupStorefrontRoutes sets up the public storefront routes
func SetupStorefrontRoutes(rg *gin.RouterGroup, db *gorm.DB, redisClient *redis.Client, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	cartHandler := handlers.NewCartHandler(db, redisClient, cfg)
	checkoutHandler := handlers.NewCheckoutHandler(db, redisClient, cfg)
	customerHandler := handlers.NewCustomerHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg)

	// Menu
	rg.GET("/menu", catalogHandler.GetMenu)
	rg.GET("/categories", catalogHandler.GetCategories)
	rg.GET("/products/:id", catalogHandler.GetProduct)

	// Cart (session carried in the X-Cart-Session header)
	cart := rg.Group("/cart")
	{
		cart.GET("", cartHandler.GetCart)
		cart.POST("/items", cartHandler.AddItem)
		cart.PUT("/items/:id", cartHandler.UpdateItemQuantity)
		cart.DELETE("/items/:id", cartHandler.RemoveItem)
		cart.DELETE("", cartHandler.ClearCart)
	}

	// Checkout
	rg.POST("/checkout", checkoutHandler.PlaceOrder)

	// Customers and addresses
	customers := rg.Group("/customers")
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("/lookup", customerHandler.GetCustomerByPhone)
		customers.GET("/:id", customerHandler.GetCustomer)
		customers.GET("/:id/orders", orderHandler.GetCustomerOrders)
		customers.POST("/:id/addresses", customerHandler.AddAddress)
		customers.PUT("/:id/addresses/:addressId", customerHandler.UpdateAddress)
		customers.PATCH("/:id/addresses/:addressId/default", customerHandler.SetDefaultAddress)
		customers.DELETE("/:id/addresses/:addressId", customerHandler.DeleteAddress)
	}

	// Order tracking
	rg.GET("/orders/:id", orderHandler.GetOrder)
}

// SetupAdminRoutes sets up the back-office routes
func SetupAdminRoutes(rg *gin.RouterGroup, db *gorm.DB, cfg *config.Config) {
	catalogHandler := handlers.NewCatalogHandler(db, cfg)
	customerHandler := handlers.NewCustomerHandler(db, cfg)
	orderHandler := handlers.NewOrderHandler(db, cfg)

	admin := rg.Group("/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		// Catalog management
		products := admin.Group("/products")
		{
			products.GET("", catalogHandler.AdminListProducts)
			products.GET("/:id", catalogHandler.AdminGetProduct)
			products.POST("", catalogHandler.AdminCreateProduct)
			products.PUT("/:id", catalogHandler.AdminUpdateProduct)
			products.PATCH("/:id/toggle", catalogHandler.AdminToggleProduct)
			products.DELETE("/:id", catalogHandler.AdminDeleteProduct)
			products.POST("/:id/option-groups", catalogHandler.AdminCreateOptionGroup)
		}
		admin.DELETE("/option-groups/:id", catalogHandler.AdminDeleteOptionGroup)
		admin.PATCH("/options/:id/toggle", catalogHandler.AdminToggleOption)

		// Order management
		orders := admin.Group("/orders")
		{
			orders.GET("", orderHandler.AdminListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PUT("/:id/status", orderHandler.AdminUpdateStatus)
			orders.PUT("/:id/cancel", orderHandler.AdminCancelOrder)
			orders.GET("/:id/receipt", orderHandler.AdminOrderReceipt)
		}

		// Customers
		admin.GET("/customers", customerHandler.AdminListCustomers)

		// Dashboard
		admin.GET("/dashboard", orderHandler.AdminDashboard)
	}
}
