// internal/domain/order/service.go
package order

import (
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/cart"
	"github.com/your-org/storefront-backend/internal/domain/payment"
	"github.com/your-org/storefront-backend/internal/domain/product"
)

// Bulk discount and priority shipping thresholds. Both apply exactly once,
// at checkout; cart display never sees them.
var (
	bulkDiscountThreshold = decimal.NewFromInt(100)
	bulkDiscountFactor    = decimal.NewFromFloat(0.95)
	priorityThreshold     = decimal.NewFromInt(200)
)

const priorityTag = " [PRIORITY]"

// Service is the order workflow engine. It owns the active carts and the
// orders; all mutations of either collection are serialized through its
// lock, and checkout runs as one exclusive section so a cart can be
// consumed at most once and stock contention has exactly one winner.
type Service struct {
	mu       sync.RWMutex
	config   *config.Config
	log      *logrus.Logger
	catalog  *product.Repository
	payments *payment.Service

	carts       map[uint]*cart.Cart
	orders      map[uint]*Order
	nextCartID  uint
	nextOrderID uint
}

// NewService creates a new workflow engine bound to the given catalog store
func NewService(cfg *config.Config, log *logrus.Logger, catalog *product.Repository, payments *payment.Service) *Service {
	return &Service{
		config:      cfg,
		log:         log,
		catalog:     catalog,
		payments:    payments,
		carts:       make(map[uint]*cart.Cart),
		orders:      make(map[uint]*Order),
		nextCartID:  1,
		nextOrderID: 1,
	}
}

// CreateCart allocates a fresh empty cart. A nil userID creates an
// anonymous cart.
func (s *Service) CreateCart(userID *uint) *cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := cart.New(s.nextCartID, userID)
	s.nextCartID++
	s.carts[c.ID] = c

	fields := logrus.Fields{"cart_id": c.ID}
	if userID != nil {
		fields["user_id"] = *userID
	}
	s.log.WithFields(fields).Debug("Cart created")

	return copyCart(c)
}

// GetCart retrieves an active cart by ID
func (s *Service) GetCart(cartID uint) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	return copyCart(c), nil
}

// AddToCart adds a quantity of a product to the cart, capturing the
// product's current price
func (s *Service) AddToCart(cartID, productID uint, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return ErrCartNotFound
	}

	p, err := s.catalog.Get(productID)
	if err != nil {
		return err
	}

	if err := c.AddItem(p, quantity); err != nil {
		return err
	}

	if c.LineCount() > s.config.Cart.SoftLineLimit {
		s.log.WithFields(logrus.Fields{
			"cart_id": cartID,
			"lines":   c.LineCount(),
			"limit":   s.config.Cart.SoftLineLimit,
		}).Warn("Cart exceeds soft line limit")
	}

	return nil
}

// UpdateCartItem overwrites the quantity of an existing cart line. A
// quantity of zero removes the line.
func (s *Service) UpdateCartItem(cartID, productID uint, quantity int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return ErrCartNotFound
	}
	return c.UpdateQuantity(productID, quantity)
}

// RemoveFromCart removes every line for the product from the cart
func (s *Service) RemoveFromCart(cartID, productID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return ErrCartNotFound
	}
	c.RemoveItem(productID)
	return nil
}

// Checkout converts a cart into an order. Stock reservation is
// all-or-nothing: if any line is short, no stock changes, no order is
// created and the cart stays intact. On success the cart is consumed and
// can no longer be retrieved.
func (s *Service) Checkout(cartID uint, shippingAddress, billingAddress string) (*Order, error) {
	if shippingAddress == "" {
		return nil, errors.Wrap(ErrInvalidArgument, "shipping address is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	// Snapshot lines and totals before touching stock.
	lines := make([]Line, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, Line{
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Quantity:    l.Quantity,
			Price:       l.Price,
		})
	}

	subtotal := c.Subtotal()
	total := subtotal
	if subtotal.GreaterThan(bulkDiscountThreshold) {
		total = subtotal.Mul(bulkDiscountFactor)
	}

	if err := s.catalog.Reserve(reservations(c)); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	o := &Order{
		ID:                s.nextOrderID,
		UserID:            c.UserID,
		Lines:             lines,
		TotalAmount:       total,
		TotalItems:        c.TotalItemCount(),
		Status:            StatusPending,
		ShippingAddress:   shippingAddress,
		BillingAddress:    billingAddress,
		OrderDate:         now,
		EstimatedDelivery: now.AddDate(0, 0, s.config.Order.EstimatedDeliveryDays),
	}
	s.nextOrderID++
	o.OrderNumber = o.GenerateOrderNumber()

	if total.GreaterThan(priorityThreshold) {
		o.ShippingAddress += priorityTag
	}

	s.payments.Capture(o.OrderNumber, o.TotalAmount)

	delete(s.carts, cartID)
	s.orders[o.ID] = o

	s.log.WithFields(logrus.Fields{
		"order_id":     o.ID,
		"order_number": o.OrderNumber,
		"cart_id":      cartID,
		"total":        o.TotalAmount.String(),
		"items":        o.TotalItems,
	}).Info("Order created")

	return copyOrder(o), nil
}

// GetOrder retrieves an order by ID. The first read of a pending order
// flips it to viewed; a pending order past its expiry window flips to
// expired instead. Both flips are idempotent on later reads.
func (s *Service) GetOrder(orderID uint) (*Order, error) {
	if orderID == 0 {
		return nil, ErrInvalidArgument
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return nil, ErrOrderNotFound
	}

	if o.Status == StatusPending {
		if o.IsPendingExpired(time.Now().UTC(), s.config.Order.PendingExpiry) {
			o.Status = StatusExpired
		} else {
			o.Status = StatusViewed
		}
	}

	return copyOrder(o), nil
}

// ListOrdersByUser returns the user's orders in ascending order-date order,
// with insertion order breaking ties
func (s *Service) ListOrdersByUser(userID uint) []*Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*Order
	for _, o := range s.orders {
		if o.UserID != nil && *o.UserID == userID {
			result = append(result, copyOrder(o))
		}
	}

	// IDs ascend with insertion, so they are the stable tie-break.
	sort.Slice(result, func(i, j int) bool {
		if result[i].OrderDate.Equal(result[j].OrderDate) {
			return result[i].ID < result[j].ID
		}
		return result[i].OrderDate.Before(result[j].OrderDate)
	})
	return result
}

// UpdateStatus applies a status transition requested by its label. Labels
// outside the enumeration fail with ErrInvalidStatus; transitions the state
// machine forbids fail with ErrInvalidTransition and leave the order
// unchanged.
func (s *Service) UpdateStatus(orderID uint, label string) error {
	next, err := ParseStatus(label)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return ErrOrderNotFound
	}

	if !o.Status.CanTransitionTo(next) {
		return errors.Wrapf(ErrInvalidTransition, "%s -> %s", o.Status, next)
	}

	now := time.Now().UTC()
	switch next {
	case StatusShipped:
		o.ShippedAt = &now
	case StatusDelivered:
		o.DeliveredAt = &now
	}
	o.Status = next

	s.log.WithFields(logrus.Fields{
		"order_id": orderID,
		"status":   next,
	}).Info("Order status updated")

	return nil
}

// Cancel cancels the order when it is still in a pre-shipment state and
// reports whether cancellation occurred. Cancelled orders are retained so
// later reads and aggregate reports can observe them.
func (s *Service) Cancel(orderID uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	if !ok {
		return false, ErrOrderNotFound
	}

	if !o.CanBeCancelled() {
		return false, errors.Wrapf(ErrInvalidTransition, "cannot cancel %s order", o.Status)
	}

	o.Status = StatusCancelled
	s.log.WithField("order_id", orderID).Info("Order cancelled")
	return true, nil
}

// TotalRevenue returns the sum of totals over all non-cancelled orders
func (s *Service) TotalRevenue() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, o := range s.orders {
		if o.Status != StatusCancelled {
			total = total.Add(o.TotalAmount)
		}
	}
	return total
}

// TotalSales returns the sum of totals over shipped and delivered orders
func (s *Service) TotalSales() decimal.Decimal {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := decimal.Zero
	for _, o := range s.orders {
		if o.Status == StatusShipped || o.Status == StatusDelivered {
			total = total.Add(o.TotalAmount)
		}
	}
	return total
}

// ResetCounters clears all in-memory carts and orders and restarts both ID
// counters. Administrative and test use only.
func (s *Service) ResetCounters() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.carts = make(map[uint]*cart.Cart)
	s.orders = make(map[uint]*Order)
	s.nextCartID = 1
	s.nextOrderID = 1

	s.log.Warn("Engine state reset")
}

// reservations aggregates cart lines per product so duplicate lines for the
// same product are checked against stock as one combined quantity
func reservations(c *cart.Cart) []product.Reservation {
	index := make(map[uint]int)
	var result []product.Reservation
	for _, line := range c.Lines {
		if i, ok := index[line.ProductID]; ok {
			result[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(result)
		result = append(result, product.Reservation{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
		})
	}
	return result
}

func copyCart(c *cart.Cart) *cart.Cart {
	cp := *c
	cp.Lines = append([]cart.Line(nil), c.Lines...)
	return &cp
}

func copyOrder(o *Order) *Order {
	cp := *o
	cp.Lines = append([]Line(nil), o.Lines...)
	return &cp
}
