// internal/domain/order/errors.go
package order

import "errors"

var (
	// ErrCartNotFound is returned when no active cart exists for the given ID
	ErrCartNotFound = errors.New("cart not found")

	// ErrOrderNotFound is returned when no order exists for the given ID
	ErrOrderNotFound = errors.New("order not found")

	// ErrEmptyCart is returned when checkout is attempted on a cart with no items
	ErrEmptyCart = errors.New("cart is empty")

	// ErrInvalidArgument is returned when an identifier is absent or malformed
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidStatus is returned when a status label is not one of the
	// enumerated state names
	ErrInvalidStatus = errors.New("invalid order status")

	// ErrInvalidTransition is returned when the state machine forbids the
	// requested status change; the order is left unchanged
	ErrInvalidTransition = errors.New("invalid status transition")
)
