package payment

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// History returns the user's payments, newest first
func (s *Service) History(ctx context.Context, email string) ([]*entity.Payment, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	return s.paymentRepo.ListByOwner(ctx, email)
}
