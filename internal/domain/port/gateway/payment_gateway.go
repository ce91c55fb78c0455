package gateway

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// CreateOrderRequest asks the gateway for a checkout order
type CreateOrderRequest struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]string
}

// PaymentGateway creates orders at the payment provider
type PaymentGateway interface {
	// CreateOrder registers an order and returns its provider id
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*entity.Order, error)

	// KeyID returns the public key the client uses to open checkout
	KeyID() string
}
