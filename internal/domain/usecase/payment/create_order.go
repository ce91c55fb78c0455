package payment

import (
	"context"
	"fmt"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// CreateOrder opens a gateway order for a package and records it as created
func (s *Service) CreateOrder(ctx context.Context, email, packageID string) (*usecase.CheckoutOrder, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, errs.NewValidationError("email", err)
	}
	pkg, err := s.findPackage(packageID)
	if err != nil {
		return nil, err
	}
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return nil, err
	}

	order, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
		Amount:   pkg.Amount,
		Currency: pkg.Currency,
		Receipt:  s.idGenerator.NewID(),
		Notes: map[string]string{
			"email":     email,
			"packageId": pkg.ID,
		},
	})
	if err != nil {
		s.logger.Error("Failed to create gateway order", map[string]any{
			"email":     email,
			"packageId": pkg.ID,
			"error":     err.Error(),
		})
		// Gateway errors surface as 500 whatever status the provider answered with.
		return nil, fmt.Errorf("%w: %s", errs.ErrUpstreamFailure, err.Error())
	}

	payment := entity.NewPayment(order.ID, email, pkg, s.timeProvider)
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	s.logger.Info("Payment order created", map[string]any{
		"email":     email,
		"orderId":   order.ID,
		"packageId": pkg.ID,
		"amount":    pkg.Amount,
	})

	return &usecase.CheckoutOrder{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.KeyID(),
		Package:  pkg,
	}, nil
}
