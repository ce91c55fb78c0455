package persistence

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// UserRepository defines the credit ledger storage operations
type UserRepository interface {
	// GetByEmail retrieves a user by email
	//
	// Possible errors:
	// - ErrUserNotFound: If no user has that email
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateUser: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// DebitCredits subtracts amount in a single conditional statement, refusing
	// when the remaining balance would drop below reserve
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientCredits: If the balance cannot cover amount plus reserve
	// - ErrDatabaseConnection: If database connection fails
	DebitCredits(ctx context.Context, email string, amount, reserve int64) (*entity.User, error)

	// AddCredits adds amount to the balance
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	AddCredits(ctx context.Context, email string, amount int64) (*entity.User, error)
}
