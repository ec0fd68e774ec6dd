// internal/domain/cart/entity.go
package cart

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/storefront-backend/internal/domain/product"
)

var (
	// ErrInvalidQuantity is returned when a quantity is below the allowed minimum
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrLineNotFound is returned when no cart line matches the given product
	ErrLineNotFound = errors.New("cart line not found")
)

// StatusNew is the status of a cart that is still accumulating items.
// A cart never reaches any other status: checkout consumes it.
const StatusNew = "NEW"

// Line is one product entry in a cart. Price is captured at add time and
// never re-read from the catalog.
type Line struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Subtotal returns price multiplied by quantity for this line
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates product lines for one user prior to checkout
type Cart struct {
	ID        uint      `json:"id"`
	UserID    *uint     `json:"user_id,omitempty"` // nil for anonymous carts
	Lines     []Line    `json:"lines"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// New creates an empty cart for the given user (nil for anonymous)
func New(id uint, userID *uint) *Cart {
	now := time.Now().UTC()
	return &Cart{
		ID:        id,
		UserID:    userID,
		Lines:     []Line{},
		Status:    StatusNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem appends a new line for the product, capturing its current price.
// Quantities below 1 are rejected.
func (c *Cart) AddItem(p *product.Product, quantity int) error {
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	c.Lines = append(c.Lines, Line{
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    quantity,
		Price:       p.Price,
	})
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// UpdateQuantity overwrites the quantity on every line for the product.
// A quantity of zero removes the lines; negative quantities are rejected.
// Updating a product with no line in the cart is reported, never synthesized.
func (c *Cart) UpdateQuantity(productID uint, quantity int) error {
	if quantity < 0 {
		return ErrInvalidQuantity
	}

	found := false
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
			continue
		}
		found = true
		if quantity == 0 {
			continue
		}
		line.Quantity = quantity
		kept = append(kept, line)
	}
	if !found {
		return ErrLineNotFound
	}

	c.Lines = kept
	c.UpdatedAt = time.Now().UTC()
	return nil
}

// RemoveItem removes every line for the product in a single filtering pass
func (c *Cart) RemoveItem(productID uint) {
	kept := c.Lines[:0]
	for _, line := range c.Lines {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	c.Lines = kept
	c.UpdatedAt = time.Now().UTC()
}

// Subtotal returns the live, uncached sum of line subtotals. Discounts are
// checkout's concern and are never applied here.
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Subtotal())
	}
	return total
}

// TotalItemCount returns the sum of quantities across all lines
func (c *Cart) TotalItemCount() int {
	count := 0
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// IsEmpty reports whether the cart holds no items
func (c *Cart) IsEmpty() bool {
	return c.TotalItemCount() == 0
}

// LineCount returns the number of lines in the cart
func (c *Cart) LineCount() int {
	return len(c.Lines)
}
