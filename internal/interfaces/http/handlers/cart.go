// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	engine *order.Service
	config *config.Config
}

// NewCartHandler creates a new cart handler
func NewCartHandler(engine *order.Service, cfg *config.Config) *CartHandler {
	return &CartHandler{
		engine: engine,
		config: cfg,
	}
}

// CreateCartRequest represents cart creation data
type CreateCartRequest struct {
	UserID *uint `json:"user_id"` // omitted for anonymous carts
}

// AddItemRequest represents add to cart data
type AddItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

// UpdateItemRequest represents cart line update data
type UpdateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CreateCart handles POST /carts
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req CreateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	newCart := h.engine.CreateCart(req.UserID)

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cart created successfully",
		"data":    newCart,
	})
}

// GetCart handles GET /carts/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	cartID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	foundCart, err := h.engine.GetCart(cartID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart retrieved successfully",
		"data": gin.H{
			"cart":        foundCart,
			"subtotal":    foundCart.Subtotal(),
			"total_items": foundCart.TotalItemCount(),
		},
	})
}

// AddItem handles POST /carts/:id/items
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.engine.AddToCart(cartID, req.ProductID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item added to cart",
	})
}

// UpdateItem handles PUT /carts/:id/items/:productId
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cartID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"details": err.Error(),
		})
		return
	}

	if err := h.engine.UpdateCartItem(cartID, productID, *req.Quantity); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart item updated",
	})
}

// RemoveItem handles DELETE /carts/:id/items/:productId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cartID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	productID, ok := parseIDParam(c, "productId")
	if !ok {
		return
	}

	if err := h.engine.RemoveFromCart(cartID, productID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
	})
}
