// internal/interfaces/http/handlers/admin.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/order"
)

// AdminHandler handles aggregate reports and administrative operations
type AdminHandler struct {
	engine *order.Service
	config *config.Config
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(engine *order.Service, cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		engine: engine,
		config: cfg,
	}
}

// TotalRevenue handles GET /admin/reports/revenue
func (h *AdminHandler) TotalRevenue(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Revenue report generated",
		"data":    gin.H{"total_revenue": h.engine.TotalRevenue()},
	})
}

// TotalSales handles GET /admin/reports/sales
func (h *AdminHandler) TotalSales(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Sales report generated",
		"data":    gin.H{"total_sales": h.engine.TotalSales()},
	})
}

// Reset handles POST /admin/reset. It discards all carts and orders and
// restarts the ID counters; intended for test environments only.
func (h *AdminHandler) Reset(c *gin.Context) {
	if h.config.IsProduction() {
		c.JSON(http.StatusForbidden, gin.H{
			"error": "Reset is disabled in production",
		})
		return
	}

	h.engine.ResetCounters()

	c.JSON(http.StatusOK, gin.H{
		"message": "Engine state reset",
	})
}
