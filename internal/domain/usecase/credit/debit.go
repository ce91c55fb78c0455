package credit

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

// TryDebit atomically subtracts amount from the balance
func (s *Service) TryDebit(ctx context.Context, email string, amount int64) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := entity.ValidateAmount(amount); err != nil {
		return nil, err
	}

	user, err := s.userRepo.DebitCredits(ctx, email, amount, s.minimumReserve)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInsufficientCredits):
			s.logger.Info("Debit rejected", errs.LogFieldsOf(err))
		case errors.Is(err, errs.ErrUserNotFound):
			s.logger.Warn("Attempt to debit non-existent user", map[string]any{
				"email":  email,
				"amount": amount,
			})
		default:
			s.logger.Error("Failed to debit credits", map[string]any{
				"email":  email,
				"amount": amount,
				"error":  err.Error(),
			})
		}
		return nil, err
	}

	s.logger.Info("Credits debited", map[string]any{
		"email":      email,
		"amount":     amount,
		"newBalance": user.Credits(),
	})
	return user, nil
}

// Refund returns credits taken for an operation that did not complete
func (s *Service) Refund(ctx context.Context, email string, amount int64) error {
	user, err := s.Credit(ctx, email, amount)
	if err != nil {
		s.logger.Error("Failed to refund credits", map[string]any{
			"email":  email,
			"amount": amount,
			"error":  err.Error(),
		})
		return err
	}

	s.logger.Info("Credits refunded", map[string]any{
		"email":      user.Email,
		"amount":     amount,
		"newBalance": user.Credits(),
	})
	return nil
}
