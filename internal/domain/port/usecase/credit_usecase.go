package usecase

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// CreditUseCase is the credit ledger
type CreditUseCase interface {
	// GetBalance returns the current balance of the account
	GetBalance(ctx context.Context, email string) (int64, error)

	// TryDebit atomically subtracts amount or fails with ErrInsufficientCredits
	TryDebit(ctx context.Context, email string, amount int64) (*entity.User, error)

	// Credit adds amount to the balance
	Credit(ctx context.Context, email string, amount int64) (*entity.User, error)

	// Refund returns credits taken for an operation that did not complete
	Refund(ctx context.Context, email string, amount int64) error
}
