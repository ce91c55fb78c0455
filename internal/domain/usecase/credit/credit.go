package credit

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// Credit adds amount to the balance
func (s *Service) Credit(ctx context.Context, email string, amount int64) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}

	user, err := s.userRepo.AddCredits(ctx, email, amount)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("Credits added", map[string]any{
		"email":      email,
		"amount":     amount,
		"newBalance": user.Credits(),
	})
	return user, nil
}
