package payment

import (
	"strings"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// Service handles credit top-ups through the payment gateway
type Service struct {
	uow          persistence.UnitOfWork
	userRepo     persistence.UserRepository
	paymentRepo  persistence.PaymentRepository
	gateway      gateway.PaymentGateway
	idGenerator  coreport.IDGenerator
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	packages     []entity.CreditPackage
	keySecret    string
}

// NewService creates a new payment service.
// keySecret is the gateway secret used to sign callbacks.
func NewService(
	uow persistence.UnitOfWork,
	userRepo persistence.UserRepository,
	paymentRepo persistence.PaymentRepository,
	paymentGateway gateway.PaymentGateway,
	idGenerator coreport.IDGenerator,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	packages []entity.CreditPackage,
	keySecret string,
) usecase.PaymentUseCase {
	return &Service{
		uow:          uow,
		userRepo:     userRepo,
		paymentRepo:  paymentRepo,
		gateway:      paymentGateway,
		idGenerator:  idGenerator,
		timeProvider: timeProvider,
		logger:       logger,
		packages:     packages,
		keySecret:    keySecret,
	}
}

// ListPackages returns the purchasable credit packages
func (s *Service) ListPackages() []entity.CreditPackage {
	out := make([]entity.CreditPackage, len(s.packages))
	copy(out, s.packages)
	return out
}

func (s *Service) findPackage(id string) (entity.CreditPackage, error) {
	id = strings.TrimSpace(id)
	for _, pkg := range s.packages {
		if pkg.ID == id {
			return pkg, nil
		}
	}
	return entity.CreditPackage{}, errs.ErrPackageNotFound
}
