package generation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/image2code-backend/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/gateway"
	usecasemocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/usecase"
)

const validProject = `{"projectTitle":"Shop","explanation":"Grid of products","files":{"/App.js":{"code":"export default function App() { return null }"}}}`

type fixture struct {
	ledger *usecasemocks.MockCreditUseCase
	model  *gatewaymocks.MockModelClient
	clock  *core.MockTimeProvider
	logger *core.MockLogger
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		ledger: usecasemocks.NewMockCreditUseCase(t),
		model:  gatewaymocks.NewMockModelClient(t),
		clock:  core.NewMockTimeProvider(t),
		logger: core.NewMockLogger(t),
	}
	f.clock.EXPECT().Now().Return(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)).Maybe()
	f.clock.EXPECT().Since(mock.Anything).Return(coreport.Duration(250 * time.Millisecond)).Maybe()
	f.clock.EXPECT().WithTimeout(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, d coreport.Duration) (context.Context, context.CancelFunc) {
			return context.WithTimeout(ctx, d.Std())
		}).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		f.logger.On(level, mock.Anything, mock.Anything).Maybe()
	}
	return f
}

func testConfig(refund bool) Config {
	return Config{
		Modes: map[entity.Mode]ModeSettings{
			entity.ModeBasic:        {Model: "basic-model", Cost: 10},
			entity.ModeProfessional: {Model: "pro-model", Cost: 20},
			entity.ModeUltra:        {Model: "ultra-model", Cost: 30},
		},
		ImproveModel:    "improve-model",
		ImproveCost:     5,
		Timeout:         coreport.Second,
		RefundOnFailure: refund,
		MaxTokens:       4096,
	}
}

func (f *fixture) service(cfg Config) *Service {
	return NewService(f.ledger, f.model, f.clock, f.logger, cfg).(*Service)
}

func basicRequest(t *testing.T) *entity.GenerationRequest {
	req, err := entity.NewGenerationRequest("a landing page", "https://cdn.example.com/design.png",
		[]string{"dark mode"}, "user@example.com", "basic", "react-tailwind")
	require.NoError(t, err)
	return req
}

func userWith(credits int64) *entity.User {
	u := &entity.User{ID: 7, Email: "user@example.com"}
	u.RestoreCredits(credits)
	return u
}

func TestService_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("debits the mode cost and returns the parsed project", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(15), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(10)).Return(userWith(5), nil)
		f.model.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req gateway.CompletionRequest) bool {
			return req.Model == "basic-model" && len(req.Messages) == 1 && len(req.Messages[0].Parts) == 2
		})).Return(&gateway.Completion{Content: "```json\n" + validProject + "\n```"}, nil)

		result, err := f.service(testConfig(true)).Generate(ctx, basicRequest(t))

		require.NoError(t, err)
		assert.Equal(t, "Shop", result.Project.ProjectTitle)
		assert.Equal(t, int64(10), result.CreditsCharged)
		assert.Equal(t, int64(5), result.CreditsRemaining)
		assert.Equal(t, "basic-model", result.Model)
	})

	t.Run("uses the professional tier price", func(t *testing.T) {
		f := newFixture(t)
		req := basicRequest(t)
		req.Mode = entity.ModeProfessional
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(100), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(20)).Return(userWith(80), nil)
		f.model.EXPECT().Complete(mock.Anything, mock.Anything).Return(&gateway.Completion{Content: validProject}, nil)

		result, err := f.service(testConfig(true)).Generate(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, int64(20), result.CreditsCharged)
	})

	t.Run("insufficient credits never reaches the model", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(5), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(10)).
			Return(nil, errs.NewInsufficientCreditsError("user@example.com", 10, 5))

		result, err := f.service(testConfig(true)).Generate(ctx, basicRequest(t))

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		f.model.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)
	})

	t.Run("unknown user is not debited", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(0), errs.ErrUserNotFound)

		_, err := f.service(testConfig(true)).Generate(ctx, basicRequest(t))

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
		f.ledger.AssertNotCalled(t, "TryDebit", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unconfigured mode is rejected before any ledger call", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig(true)
		delete(cfg.Modes, entity.ModeUltra)
		req := basicRequest(t)
		req.Mode = entity.ModeUltra

		_, err := f.service(cfg).Generate(ctx, req)

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("upstream failure refunds when configured", func(t *testing.T) {
		f := newFixture(t)
		upstream := errs.NewUpstreamError("openrouter", 500, "internal error")
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(15), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(10)).Return(userWith(5), nil)
		f.model.EXPECT().Complete(mock.Anything, mock.Anything).Return(nil, upstream)
		f.ledger.EXPECT().Refund(mock.Anything, "user@example.com", int64(10)).Return(nil)

		_, err := f.service(testConfig(true)).Generate(ctx, basicRequest(t))

		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
		assert.Equal(t, 500, errs.HTTPStatus(err))
	})

	t.Run("upstream failure keeps the debit when refunds are disabled", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(15), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(10)).Return(userWith(5), nil)
		f.model.EXPECT().Complete(mock.Anything, mock.Anything).
			Return(nil, errs.NewUpstreamError("openrouter", 500, "internal error"))

		_, err := f.service(testConfig(false)).Generate(ctx, basicRequest(t))

		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
		f.ledger.AssertNotCalled(t, "Refund", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unparseable output is a format error and is refunded", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(15), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(10)).Return(userWith(5), nil)
		f.model.EXPECT().Complete(mock.Anything, mock.Anything).
			Return(&gateway.Completion{Content: "Sorry, I can only describe the image."}, nil)
		f.ledger.EXPECT().Refund(mock.Anything, "user@example.com", int64(10)).Return(nil)

		_, err := f.service(testConfig(true)).Generate(ctx, basicRequest(t))

		var formatErr *errs.GenerationFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Contains(t, formatErr.Snippet, "Sorry")
	})

	t.Run("deadline exceeded maps to timeout", func(t *testing.T) {
		f := newFixture(t)
		cfg := testConfig(true)
		cfg.Timeout = 10 * coreport.Millisecond
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(15), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(10)).Return(userWith(5), nil)
		f.model.EXPECT().Complete(mock.Anything, mock.Anything).
			RunAndReturn(func(callCtx context.Context, _ gateway.CompletionRequest) (*gateway.Completion, error) {
				<-callCtx.Done()
				return nil, callCtx.Err()
			})
		f.ledger.EXPECT().Refund(mock.Anything, "user@example.com", int64(10)).Return(nil)

		_, err := f.service(cfg).Generate(ctx, basicRequest(t))

		assert.ErrorIs(t, err, errs.ErrTimeout)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
	})
}

func TestService_Improve(t *testing.T) {
	ctx := context.Background()

	t.Run("returns unfenced improved code", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(50), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(5)).Return(userWith(45), nil)
		f.model.EXPECT().Complete(mock.Anything, mock.MatchedBy(func(req gateway.CompletionRequest) bool {
			return req.Model == "improve-model" && len(req.Messages) == 2
		})).Return(&gateway.Completion{Content: "```jsx\nconst App = () => <main/>\n```"}, nil)

		req, err := entity.NewImproveRequest("const App = () => <div/>", "user@example.com")
		require.NoError(t, err)

		code, err := f.service(testConfig(true)).Improve(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, "const App = () => <main/>", code)
	})

	t.Run("empty output is refunded", func(t *testing.T) {
		f := newFixture(t)
		f.ledger.EXPECT().GetBalance(ctx, "user@example.com").Return(int64(50), nil)
		f.ledger.EXPECT().TryDebit(ctx, "user@example.com", int64(5)).Return(userWith(45), nil)
		f.model.EXPECT().Complete(mock.Anything, mock.Anything).Return(&gateway.Completion{Content: "```\n```"}, nil)
		f.ledger.EXPECT().Refund(mock.Anything, "user@example.com", int64(5)).Return(nil)

		req, err := entity.NewImproveRequest("<div/>", "user@example.com")
		require.NoError(t, err)

		_, err = f.service(testConfig(true)).Improve(ctx, req)

		assert.ErrorIs(t, err, errs.ErrGenerationFormat)
	})
}
