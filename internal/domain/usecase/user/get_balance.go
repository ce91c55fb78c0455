package user

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// GetAccount returns the account and its balance
func (u *UserUseCase) GetAccount(ctx context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		u.logger.Debug("Account lookup failed", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}
	return user, nil
}
