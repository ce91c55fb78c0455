package persistence

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// PaymentRepository stores gateway orders and their outcome
type PaymentRepository interface {
	// Create records a new order
	Create(ctx context.Context, payment *entity.Payment) error

	// GetByOrderID loads a payment by its gateway order id.
	// Within a transaction the row is locked for update.
	//
	// Possible errors:
	// - ErrOrderNotFound: If no payment has that order id
	GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error)

	// Update persists status and payment id changes
	Update(ctx context.Context, payment *entity.Payment) error

	// ListByOwner returns the owner's payments, newest first
	ListByOwner(ctx context.Context, email string) ([]*entity.Payment, error)
}
