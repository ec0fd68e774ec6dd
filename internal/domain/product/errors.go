// internal/domain/product/errors.go
package product

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when no product exists for the given ID
	ErrNotFound = errors.New("product not found")

	// ErrInvalidPrice is returned when a product price is negative
	ErrInvalidPrice = errors.New("product price must not be negative")

	// ErrInvalidStock is returned when a product stock level is negative
	ErrInvalidStock = errors.New("product stock must not be negative")
)

// InsufficientStockError reports a reservation line that cannot be satisfied.
// Callers match it with errors.As to learn which product was short.
type InsufficientStockError struct {
	ProductID uint
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d: requested %d, available %d",
		e.ProductID, e.Requested, e.Available)
}
