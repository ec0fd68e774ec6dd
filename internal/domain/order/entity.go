// internal/domain/order/entity.go
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Status represents the order status. The set is closed: every comparison
// in the system is enum equality, never raw string matching.
type Status string

const (
	StatusPending   Status = "pending"
	StatusViewed    Status = "viewed"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

// transitions is the order state machine. Statuses absent from the map are
// terminal. The pending->expired transition is derived at read time and not
// requestable through UpdateStatus.
var transitions = map[Status][]Status{
	StatusPending: {StatusViewed, StatusShipped, StatusCancelled},
	StatusViewed:  {StatusShipped, StatusCancelled},
	StatusShipped: {StatusDelivered},
}

// ParseStatus converts a status label to its enum value, case-insensitively
func ParseStatus(label string) (Status, error) {
	s := Status(strings.ToLower(label))
	switch s {
	case StatusPending, StatusViewed, StatusShipped, StatusDelivered, StatusCancelled, StatusExpired:
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, label)
}

// CanTransitionTo reports whether the state machine permits moving from s
// to next
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions are possible from s
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// Line is an immutable snapshot of one cart line taken at checkout time
type Line struct {
	ProductID   uint            `json:"product_id"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"` // unit price captured at checkout
}

// Subtotal returns price multiplied by quantity for this line
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Order is an immutable snapshot of a checked-out cart plus a mutable
// status lifecycle
type Order struct {
	ID                uint            `json:"id"`
	OrderNumber       string          `json:"order_number"`
	UserID            *uint           `json:"user_id,omitempty"` // nil for guest orders
	Lines             []Line          `json:"lines"`
	TotalAmount       decimal.Decimal `json:"total_amount"` // fixed at creation, discount included
	TotalItems        int             `json:"total_items"`
	Status            Status          `json:"status"`
	ShippingAddress   string          `json:"shipping_address"`
	BillingAddress    string          `json:"billing_address,omitempty"`
	OrderDate         time.Time       `json:"order_date"`
	EstimatedDelivery time.Time       `json:"estimated_delivery"`
	ShippedAt         *time.Time      `json:"shipped_at,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
}

// GenerateOrderNumber generates a unique order number
func (o *Order) GenerateOrderNumber() string {
	// Format: ORD-YYYYMMDD-XXXXX
	return fmt.Sprintf("ORD-%s-%05d", o.OrderDate.Format("20060102"), o.ID)
}

// CanBeCancelled checks if the order can still be cancelled. Only
// pre-shipment, non-terminal orders qualify.
func (o *Order) CanBeCancelled() bool {
	return o.Status == StatusPending || o.Status == StatusViewed
}

// IsPendingExpired reports whether a pending order has outlived the given
// expiry window at the time of reading
func (o *Order) IsPendingExpired(now time.Time, expiry time.Duration) bool {
	return o.Status == StatusPending && now.Sub(o.OrderDate) > expiry
}
