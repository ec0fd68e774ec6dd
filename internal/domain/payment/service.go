// internal/domain/payment/service.go
package payment

import (
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Service is a stub payment gateway. Real payment processing is out of
// scope; every capture succeeds immediately.
type Service struct {
	log *logrus.Logger
}

// NewService creates a new payment service
func NewService(log *logrus.Logger) *Service {
	return &Service{log: log}
}

// Capture records a payment for the given order
func (s *Service) Capture(orderNumber string, amount decimal.Decimal) {
	s.log.WithFields(logrus.Fields{
		"order_number": orderNumber,
		"amount":       amount.String(),
	}).Info("Payment captured (stub)")
}
