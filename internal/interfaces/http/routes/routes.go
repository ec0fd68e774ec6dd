// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
	"github.com/your-org/storefront-backend/internal/domain/product"
	"github.com/your-org/storefront-backend/internal/interfaces/http/handlers"
)

// SetupRoutes wires all API routes to their handlers
func SetupRoutes(rg *gin.RouterGroup, productService *product.Service, engine *order.Service, cfg *config.Config) {
	setupProductRoutes(rg, productService, cfg)
	setupCartRoutes(rg, engine, cfg)
	setupOrderRoutes(rg, engine, cfg)
	setupAdminRoutes(rg, engine, cfg)
}

func setupProductRoutes(rg *gin.RouterGroup, productService *product.Service, cfg *config.Config) {
	productHandler := handlers.NewProductHandler(productService, cfg)

	products := rg.Group("/products")
	{
		products.GET("", productHandler.GetProducts)
		products.GET("/:id", productHandler.GetProduct)
		products.POST("", productHandler.CreateProduct)
		products.PUT("/:id", productHandler.UpdateProduct)
		products.DELETE("/:id", productHandler.DeleteProduct)
	}
}

func setupCartRoutes(rg *gin.RouterGroup, engine *order.Service, cfg *config.Config) {
	cartHandler := handlers.NewCartHandler(engine, cfg)

	carts := rg.Group("/carts")
	{
		carts.POST("", cartHandler.CreateCart)
		carts.GET("/:id", cartHandler.GetCart)
		carts.POST("/:id/items", cartHandler.AddItem)
		carts.PUT("/:id/items/:productId", cartHandler.UpdateItem)
		carts.DELETE("/:id/items/:productId", cartHandler.RemoveItem)
	}
}

func setupOrderRoutes(rg *gin.RouterGroup, engine *order.Service, cfg *config.Config) {
	orderHandler := handlers.NewOrderHandler(engine, cfg)

	orders := rg.Group("/orders")
	{
		orders.POST("", orderHandler.Checkout)
		orders.GET("", orderHandler.ListOrders)
		orders.GET("/:id", orderHandler.GetOrder)
		orders.PUT("/:id/status", orderHandler.UpdateStatus)
		orders.POST("/:id/cancel", orderHandler.Cancel)
	}
}

func setupAdminRoutes(rg *gin.RouterGroup, engine *order.Service, cfg *config.Config) {
	adminHandler := handlers.NewAdminHandler(engine, cfg)

	admin := rg.Group("/admin")
	{
		admin.GET("/reports/revenue", adminHandler.TotalRevenue)
		admin.GET("/reports/sales", adminHandler.TotalSales)
		admin.POST("/reset", adminHandler.Reset)
	}
}
