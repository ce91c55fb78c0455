package credit

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// Service is the credit ledger. Every balance change goes through a single
// conditional statement in the repository so concurrent debits cannot overspend.
type Service struct {
	userRepo       persistence.UserRepository
	minimumReserve int64
	logger         coreport.Logger
}

// NewService creates a new credit ledger.
// minimumReserve is the balance a debit must leave behind.
func NewService(
	userRepo persistence.UserRepository,
	minimumReserve int64,
	logger coreport.Logger,
) usecase.CreditUseCase {
	if minimumReserve < 0 {
		minimumReserve = 0
	}
	return &Service{
		userRepo:       userRepo,
		minimumReserve: minimumReserve,
		logger:         logger,
	}
}

// GetBalance returns the current balance of the account
func (s *Service) GetBalance(ctx context.Context, email string) (int64, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return 0, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	return user.Credits(), nil
}
