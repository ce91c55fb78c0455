package user

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

// SyncUser returns the account for email, creating it with the signup bonus
// on first authentication
func (u *UserUseCase) SyncUser(ctx context.Context, email, name string) (*entity.User, bool, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, false, errs.NewValidationError("email", err)
	}

	existing, err := u.userRepo.GetByEmail(ctx, email)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, errs.ErrUserNotFound) {
		return nil, false, err
	}

	user, err := entity.NewUser(email, name, u.signupBonus, u.timeProvider)
	if err != nil {
		return nil, false, err
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		// A concurrent first login created the row between the read and the insert.
		if errors.Is(err, errs.ErrDuplicateUser) {
			existing, getErr := u.userRepo.GetByEmail(ctx, email)
			if getErr != nil {
				return nil, false, getErr
			}
			return existing, false, nil
		}
		u.logger.Error("Failed to create user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, false, err
	}

	u.logger.Info("User created", map[string]any{
		"email":   email,
		"credits": user.Credits(),
	})
	return user, true, nil
}
