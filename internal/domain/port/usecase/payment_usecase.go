package usecase

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// CheckoutOrder is what the client needs to open the gateway checkout
type CheckoutOrder struct {
	OrderID  string
	Amount   int64
	Currency string
	KeyID    string
	Package  entity.CreditPackage
}

// VerifyPaymentInput carries the gateway callback fields
type VerifyPaymentInput struct {
	PaymentID string
	OrderID   string
	Signature string
}

// VerifyPaymentResult reports the outcome of a verified payment
type VerifyPaymentResult struct {
	OrderID          string
	CreditsAdded     int64
	Balance          int64
	AlreadyProcessed bool
}

// PaymentUseCase handles credit top-ups
type PaymentUseCase interface {
	// ListPackages returns the purchasable credit packages
	ListPackages() []entity.CreditPackage

	// CreateOrder opens a gateway order for a package
	CreateOrder(ctx context.Context, email, packageID string) (*CheckoutOrder, error)

	// VerifyPayment checks the gateway signature and credits the account once
	VerifyPayment(ctx context.Context, in VerifyPaymentInput) (*VerifyPaymentResult, error)

	// History returns the user's payments, newest first
	History(ctx context.Context, email string) ([]*entity.Payment, error)
}
