package usecase

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// UserUseCase defines methods for account-related business operations
type UserUseCase interface {
	// SyncUser creates the account on first authentication, returning created=true when it did
	SyncUser(ctx context.Context, email, name string) (user *entity.User, created bool, err error)

	// GetAccount returns the account and its balance
	GetAccount(ctx context.Context, email string) (*entity.User, error)
}
