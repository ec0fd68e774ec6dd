// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product
type Product struct {
	ID          uint            `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Category    string          `json:"category"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// IsAvailable reports whether the product can currently be sold
func (p *Product) IsAvailable() bool {
	return p.IsActive && p.Stock > 0
}

// Reservation is one line of a stock reservation request
type Reservation struct {
	ProductID uint
	Quantity  int
}
