package user

import (
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// UserUseCase handles account-related business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	signupBonus  int64
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase.
// signupBonus is the balance granted to a newly created account.
func NewUserUseCase(
	userRepo persistence.UserRepository,
	signupBonus int64,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.UserUseCase {
	if signupBonus < 0 {
		signupBonus = 0
	}
	return &UserUseCase{
		userRepo:     userRepo,
		signupBonus:  signupBonus,
		timeProvider: timeProvider,
		logger:       logger,
	}
}
