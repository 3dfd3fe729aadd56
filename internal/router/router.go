// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/storefront/ecommerce-backend/internal/config"
	"github.com/storefront/ecommerce-backend/internal/handlers"
	"github.com/storefront/ecommerce-backend/internal/middleware"
	"github.com/storefront/ecommerce-backend/internal/services"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	customerService := services.NewCustomerService(db)
	categoryService := services.NewCategoryService(db)
	productService := services.NewProductService(db)
	inventoryService := services.NewInventoryService(db)
	orderService := services.NewOrderService(db)

	// Initialize handlers
	customerHandler := handlers.NewCustomerHandler(customerService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	productHandler := handlers.NewProductHandler(productService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.GET("", customerHandler.GetCustomers)
			customers.GET("/:id", customerHandler.GetCustomer)
			customers.POST("", customerHandler.CreateCustomer)
			customers.PUT("/:id", customerHandler.UpdateCustomer)
			customers.DELETE("/:id", customerHandler.DeleteCustomer)
		}

		categories := api.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.POST("", categoryHandler.CreateCategory)
			categories.PUT("/:id", categoryHandler.UpdateCategory)
			categories.DELETE("/:id", categoryHandler.DeleteCategory)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/:id", productHandler.GetProduct)
			products.POST("", productHandler.CreateProduct)
			products.PUT("/:id", productHandler.UpdateProduct)
			products.DELETE("/:id", productHandler.DeleteProduct)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", inventoryHandler.GetInventory)
			inventory.GET("/:productId", inventoryHandler.GetInventoryByProductID)
			inventory.POST("", inventoryHandler.CreateInventory)
			inventory.PUT("/:productId", inventoryHandler.UpdateInventory)
			inventory.DELETE("/:productId", inventoryHandler.DeleteInventory)
		}

		orders := api.Group("/orders")
		{
			orders.GET("", orderHandler.GetOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("", orderHandler.CreateOrder)
			orders.PUT("/:id", orderHandler.UpdateOrder)
			orders.PUT("/:id/status", orderHandler.UpdateOrderStatus)
			orders.PUT("/:id/ship", orderHandler.ShipOrder)
			orders.PUT("/:id/cancel", orderHandler.CancelOrder)
			orders.DELETE("/:id", orderHandler.DeleteOrder)
		}
	}

	return r
}
