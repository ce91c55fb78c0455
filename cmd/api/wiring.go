package main

import (
	"time"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/usecase/credit"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/usecase/design"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/usecase/generation"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/usecase/payment"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/usecase/user"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/idgen"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/llm"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/razorpay"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/redis"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/config"
)

// cacheDependencies are the Redis backed collaborators; zero values mean Redis is disabled
type cacheDependencies struct {
	designs persistence.DesignCache
	limiter middleware.RateLimiter
}

// services are the use cases served over HTTP
type services struct {
	credits    usecase.CreditUseCase
	users      usecase.UserUseCase
	generation usecase.GenerationUseCase
	designs    usecase.DesignUseCase
	payments   usecase.PaymentUseCase
}

func newCacheDependencies(client *redis.Client, ttl time.Duration, m *metrics.Metrics, tp coreport.TimeProvider) cacheDependencies {
	var recorder redis.CacheRecorder
	if m != nil {
		recorder = m
	}
	return cacheDependencies{
		designs: redis.NewDesignCache(client, ttl, recorder),
		limiter: redis.NewRateLimiter(client, tp),
	}
}

func buildServices(
	cfg *config.Config,
	db *database.Manager,
	cache cacheDependencies,
	m *metrics.Metrics,
	tp coreport.TimeProvider,
	logger coreport.Logger,
) services {
	userRepo := db.UserRepository()

	credits := credit.NewService(userRepo, cfg.Credits.MinimumReserve, logger)
	users := user.NewUserUseCase(userRepo, cfg.Credits.SignupBonus, tp, logger)

	modelClient := llm.NewOpenRouterClient(llm.Config{
		BaseURL:  cfg.OpenRouter.BaseURL,
		APIKey:   cfg.OpenRouter.APIKey,
		Referer:  cfg.OpenRouter.Referer,
		AppTitle: cfg.OpenRouter.AppTitle,
		Timeout:  cfg.OpenRouter.Timeout,
	}, logger)
	generations := generation.NewService(credits, modelClient, tp, logger, generationConfig(cfg.Generation))

	designs := design.NewService(db.DesignRepository(), userRepo, cache.designs, tp, logger)

	paymentGateway := razorpay.NewClient(razorpay.Config{
		BaseURL:   cfg.Razorpay.BaseURL,
		KeyID:     cfg.Razorpay.KeyID,
		KeySecret: cfg.Razorpay.KeySecret,
		Timeout:   cfg.Razorpay.Timeout,
	}, logger)
	payments := payment.NewService(
		db.CreateUnitOfWork(),
		userRepo,
		db.PaymentRepository(),
		paymentGateway,
		idgen.NewUUIDGenerator(),
		tp,
		logger,
		creditPackages(cfg.Payment),
		cfg.Razorpay.KeySecret,
	)

	if m != nil {
		generations = metrics.InstrumentGeneration(generations, m)
		payments = metrics.InstrumentPayment(payments, m)
	}

	return services{
		credits:    credits,
		users:      users,
		generation: generations,
		designs:    designs,
		payments:   payments,
	}
}

// generationConfig converts the configured mode table; unknown mode names are skipped
func generationConfig(cfg config.GenerationConfig) generation.Config {
	modes := make(map[entity.Mode]generation.ModeSettings, len(cfg.Modes))
	for name, mode := range cfg.Modes {
		parsed, err := entity.ParseMode(name)
		if err != nil {
			continue
		}
		modes[parsed] = generation.ModeSettings{Model: mode.Model, Cost: mode.Cost}
	}
	return generation.Config{
		Modes:           modes,
		ImproveModel:    cfg.ImproveModel,
		ImproveCost:     cfg.ImproveCost,
		Timeout:         coreport.Duration(cfg.Timeout),
		RefundOnFailure: cfg.RefundOnFailure,
		MaxTokens:       cfg.MaxTokens,
		Temperature:     cfg.Temperature,
	}
}

func creditPackages(cfg config.PaymentConfig) []entity.CreditPackage {
	packages := make([]entity.CreditPackage, 0, len(cfg.Packages))
	for _, p := range cfg.Packages {
		packages = append(packages, entity.CreditPackage{
			ID:       p.ID,
			Name:     p.Name,
			Credits:  p.Credits,
			Amount:   p.Amount,
			Currency: p.Currency,
		})
	}
	return packages
}
