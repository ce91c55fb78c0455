package generation

import (
	"context"
	"errors"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// ModeSettings is the model and price of one generation tier
type ModeSettings struct {
	Model string
	Cost  int64
}

// Config controls pricing and model invocation
type Config struct {
	Modes           map[entity.Mode]ModeSettings
	ImproveModel    string
	ImproveCost     int64
	Timeout         coreport.Duration
	RefundOnFailure bool
	MaxTokens       int
	Temperature     float64
}

// Service runs credit-metered generations
type Service struct {
	ledger       usecase.CreditUseCase
	model        gateway.ModelClient
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	cfg          Config
}

// NewService creates a new generation service
func NewService(
	ledger usecase.CreditUseCase,
	model gateway.ModelClient,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	cfg Config,
) usecase.GenerationUseCase {
	return &Service{
		ledger:       ledger,
		model:        model,
		timeProvider: timeProvider,
		logger:       logger,
		cfg:          cfg,
	}
}

// settingsFor returns the tier settings for mode
func (s *Service) settingsFor(mode entity.Mode) (ModeSettings, error) {
	settings, ok := s.cfg.Modes[mode]
	if !ok || settings.Cost <= 0 {
		return ModeSettings{}, errs.NewValidationError("mode", errs.ErrInvalidMode)
	}
	return settings, nil
}

// charge checks the account exists and debits amount
func (s *Service) charge(ctx context.Context, email string, amount int64) (*entity.User, error) {
	if _, err := s.ledger.GetBalance(ctx, email); err != nil {
		return nil, err
	}
	return s.ledger.TryDebit(ctx, email, amount)
}

// complete calls the model under the configured deadline
func (s *Service) complete(ctx context.Context, req gateway.CompletionRequest) (*gateway.Completion, error) {
	callCtx, cancel := s.timeProvider.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	start := s.timeProvider.Now()
	completion, err := s.model.Complete(callCtx, req)
	if err != nil {
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, errs.ErrTimeout) {
			err = errors.Join(errs.ErrTimeout, err)
		}
		return nil, err
	}

	s.logger.Debug("Model call completed", map[string]any{
		"model":    req.Model,
		"duration": s.timeProvider.Since(start).Std().String(),
	})
	return completion, nil
}

// settle refunds a failed operation when configured to
func (s *Service) settle(ctx context.Context, email string, amount int64, cause error) {
	fields := errs.LogFieldsOf(cause)
	fields["email"] = email
	fields["cost"] = amount

	if !s.cfg.RefundOnFailure {
		s.logger.Warn("Generation failed after debit, credits kept", fields)
		return
	}

	// The request context may already be canceled by the client going away.
	if err := s.ledger.Refund(context.WithoutCancel(ctx), email, amount); err != nil {
		fields["refundError"] = err.Error()
		s.logger.Error("Generation failed and refund failed", fields)
		return
	}
	s.logger.Warn("Generation failed, credits refunded", fields)
}
