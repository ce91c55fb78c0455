package entity

import (
	"errors"
	"fmt"
	"time"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
)

// PaymentStatus is the lifecycle state of a top-up
type PaymentStatus string

// Payment statuses
const (
	PaymentCreated  PaymentStatus = "created"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRejected PaymentStatus = "rejected"
)

// ErrInvalidPaymentTransition is returned when a payment leaves a terminal state
var ErrInvalidPaymentTransition = errors.New("invalid payment status transition")

// CreditPackage is a purchasable bundle of credits
type CreditPackage struct {
	ID       string `json:"id" mapstructure:"id"`
	Name     string `json:"name" mapstructure:"name"`
	Credits  int64  `json:"credits" mapstructure:"credits"`
	Amount   int64  `json:"amount" mapstructure:"amount"` // minor currency units
	Currency string `json:"currency" mapstructure:"currency"`
}

// Payment records a gateway order and, once verified, the captured payment
type Payment struct {
	ID        uint64
	OrderID   string
	PaymentID string
	UserEmail string
	PackageID string
	Amount    int64
	Currency  string
	Credits   int64
	Status    PaymentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPayment creates a payment in the created state for a gateway order
func NewPayment(orderID, email string, pkg CreditPackage, timeProvider coreport.TimeProvider) *Payment {
	now := timeProvider.Now()
	return &Payment{
		OrderID:   orderID,
		UserEmail: email,
		PackageID: pkg.ID,
		Amount:    pkg.Amount,
		Currency:  pkg.Currency,
		Credits:   pkg.Credits,
		Status:    PaymentCreated,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsPaid reports whether the payment has already been credited
func (p *Payment) IsPaid() bool {
	return p.Status == PaymentPaid
}

// MarkPaid moves a created or rejected payment to paid.
// A rejected order never credited anything, so a later genuine callback may still settle it.
func (p *Payment) MarkPaid(paymentID string, timeProvider coreport.TimeProvider) error {
	if p.Status == PaymentPaid {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidPaymentTransition, p.Status, PaymentPaid)
	}
	p.PaymentID = paymentID
	p.Status = PaymentPaid
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// MarkRejected moves a created payment to rejected
func (p *Payment) MarkRejected(timeProvider coreport.TimeProvider) error {
	if p.Status != PaymentCreated {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidPaymentTransition, p.Status, PaymentRejected)
	}
	p.Status = PaymentRejected
	p.UpdatedAt = timeProvider.Now()
	return nil
}

// Order is a gateway order returned to the client for checkout
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Receipt  string
	Status   string
}
