package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// outcome labels an error for the business counters
func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, errs.ErrInsufficientCredits):
		return "insufficient_credits"
	case errors.Is(err, errs.ErrTimeout):
		return "timeout"
	case errors.Is(err, errs.ErrGenerationFormat):
		return "format_error"
	case errors.Is(err, errs.ErrUpstreamFailure):
		return "upstream_error"
	case errors.Is(err, errs.ErrSignatureMismatch):
		return "signature_mismatch"
	case errs.IsInvalidInputError(err):
		return "invalid_input"
	case errs.IsNotFoundError(err):
		return "not_found"
	default:
		return "error"
	}
}

type instrumentedGeneration struct {
	inner   usecase.GenerationUseCase
	metrics *Metrics
}

// InstrumentGeneration counts generations and their outcomes around inner
func InstrumentGeneration(inner usecase.GenerationUseCase, m *Metrics) usecase.GenerationUseCase {
	return &instrumentedGeneration{inner: inner, metrics: m}
}

func (g *instrumentedGeneration) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error) {
	start := time.Now()
	result, err := g.inner.Generate(ctx, req)

	g.metrics.GenerationsTotal.WithLabelValues("generate", string(req.Mode), outcome(err)).Inc()
	g.metrics.GenerationDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	if err == nil {
		g.metrics.CreditsCharged.WithLabelValues("generate").Add(float64(result.CreditsCharged))
	}
	return result, err
}

func (g *instrumentedGeneration) Improve(ctx context.Context, req *entity.ImproveRequest) (string, error) {
	start := time.Now()
	code, err := g.inner.Improve(ctx, req)

	g.metrics.GenerationsTotal.WithLabelValues("improve", "none", outcome(err)).Inc()
	g.metrics.GenerationDuration.WithLabelValues("improve").Observe(time.Since(start).Seconds())
	return code, err
}

type instrumentedPayment struct {
	usecase.PaymentUseCase
	metrics *Metrics
}

// InstrumentPayment counts order creation and verification outcomes around inner
func InstrumentPayment(inner usecase.PaymentUseCase, m *Metrics) usecase.PaymentUseCase {
	return &instrumentedPayment{PaymentUseCase: inner, metrics: m}
}

func (p *instrumentedPayment) CreateOrder(ctx context.Context, email, packageID string) (*usecase.CheckoutOrder, error) {
	order, err := p.PaymentUseCase.CreateOrder(ctx, email, packageID)
	p.metrics.PaymentsTotal.WithLabelValues("create_order", outcome(err)).Inc()
	return order, err
}

func (p *instrumentedPayment) VerifyPayment(ctx context.Context, in usecase.VerifyPaymentInput) (*usecase.VerifyPaymentResult, error) {
	result, err := p.PaymentUseCase.VerifyPayment(ctx, in)

	status := outcome(err)
	if err == nil && result.AlreadyProcessed {
		status = "already_processed"
	}
	p.metrics.PaymentsTotal.WithLabelValues("verify", status).Inc()
	if err == nil && !result.AlreadyProcessed {
		p.metrics.CreditsPurchased.Add(float64(result.CreditsAdded))
	}
	return result, err
}
