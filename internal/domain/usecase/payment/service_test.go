package payment

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
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/image2code-backend/mocks/port/core"
	gatewaymocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/gateway"
	"github.com/amirhossein-jamali/image2code-backend/mocks/port/persistence"
)

const (
	testSecret = "rzp_test_secret"
	testEmail  = "buyer@example.com"
)

var testPackages = []entity.CreditPackage{
	{ID: "starter", Name: "Starter", Credits: 100, Amount: 49900, Currency: "INR"},
	{ID: "pro", Name: "Pro", Credits: 500, Amount: 199900, Currency: "INR"},
}

type harness struct {
	uow      *persistence.MockUnitOfWork
	users    *persistence.MockUserRepository
	payments *persistence.MockPaymentRepository
	gateway  *gatewaymocks.MockPaymentGateway
	ids      *core.MockIDGenerator
	clock    *core.MockTimeProvider
	logger   *core.MockLogger
}

func newHarness(t *testing.T) *harness {
	h := &harness{
		uow:      persistence.NewMockUnitOfWork(t),
		users:    persistence.NewMockUserRepository(t),
		payments: persistence.NewMockPaymentRepository(t),
		gateway:  gatewaymocks.NewMockPaymentGateway(t),
		ids:      core.NewMockIDGenerator(t),
		clock:    core.NewMockTimeProvider(t),
		logger:   core.NewMockLogger(t),
	}
	h.clock.EXPECT().Now().Return(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)).Maybe()
	for _, level := range []string{"Debug", "Info", "Warn", "Error"} {
		h.logger.On(level, mock.Anything, mock.Anything).Maybe()
	}
	h.uow.EXPECT().WithinTransaction(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).Maybe()
	h.uow.EXPECT().GetPaymentRepository(mock.Anything).Return(h.payments).Maybe()
	h.uow.EXPECT().GetUserRepository(mock.Anything).Return(h.users).Maybe()
	return h
}

func (h *harness) service() *Service {
	return NewService(h.uow, h.users, h.payments, h.gateway, h.ids, h.clock, h.logger, testPackages, testSecret).(*Service)
}

func balance(credits int64) *entity.User {
	u := &entity.User{Email: testEmail}
	u.RestoreCredits(credits)
	return u
}

func TestSignature(t *testing.T) {
	sig := ComputeSignature("order_1", "pay_1", testSecret)

	assert.True(t, VerifySignature("order_1", "pay_1", sig, testSecret))
	assert.False(t, VerifySignature("order_1", "pay_2", sig, testSecret), "different payment")
	assert.False(t, VerifySignature("order_2", "pay_1", sig, testSecret), "different order")
	assert.False(t, VerifySignature("order_1", "pay_1", sig, "other-secret"), "different secret")
	assert.False(t, VerifySignature("order_1", "pay_1", "not-hex", testSecret), "garbage")
	assert.False(t, VerifySignature("order_1", "pay_1", sig[:10], testSecret), "truncated")

	tampered := []byte(sig)
	if tampered[0] == 'a' {
		tampered[0] = 'b'
	} else {
		tampered[0] = 'a'
	}
	assert.False(t, VerifySignature("order_1", "pay_1", string(tampered), testSecret), "tampered")
}

func TestService_ListPackages(t *testing.T) {
	h := newHarness(t)
	svc := h.service()

	pkgs := svc.ListPackages()
	pkgs[0].Credits = 0

	assert.Equal(t, int64(100), svc.ListPackages()[0].Credits, "callers cannot mutate the catalogue")
}

func TestService_CreateOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the gateway order and records it", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().GetByEmail(ctx, testEmail).Return(balance(0), nil)
		h.ids.EXPECT().NewID().Return("receipt-1")
		h.gateway.EXPECT().CreateOrder(ctx, gateway.CreateOrderRequest{
			Amount:   49900,
			Currency: "INR",
			Receipt:  "receipt-1",
			Notes:    map[string]string{"email": testEmail, "packageId": "starter"},
		}).Return(&entity.Order{ID: "order_1", Amount: 49900, Currency: "INR", Status: "created"}, nil)
		h.gateway.EXPECT().KeyID().Return("rzp_test_key")
		h.payments.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Payment) bool {
			return p.OrderID == "order_1" && p.Credits == 100 && p.Status == entity.PaymentCreated && p.UserEmail == testEmail
		})).Return(nil)

		order, err := h.service().CreateOrder(ctx, "Buyer@Example.com", "starter")

		require.NoError(t, err)
		assert.Equal(t, "order_1", order.OrderID)
		assert.Equal(t, "rzp_test_key", order.KeyID)
		assert.Equal(t, int64(49900), order.Amount)
	})

	t.Run("unknown package", func(t *testing.T) {
		h := newHarness(t)

		_, err := h.service().CreateOrder(ctx, testEmail, "platinum")

		assert.ErrorIs(t, err, errs.ErrPackageNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().GetByEmail(ctx, testEmail).Return(nil, errs.ErrUserNotFound)

		_, err := h.service().CreateOrder(ctx, testEmail, "starter")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("gateway failure is an upstream failure answered with 500", func(t *testing.T) {
		h := newHarness(t)
		h.users.EXPECT().GetByEmail(ctx, testEmail).Return(balance(0), nil)
		h.ids.EXPECT().NewID().Return("receipt-2")
		h.gateway.EXPECT().CreateOrder(ctx, mock.Anything).
			Return(nil, errs.NewUpstreamError("razorpay", 401, "authentication failed"))

		_, err := h.service().CreateOrder(ctx, testEmail, "starter")

		assert.ErrorIs(t, err, errs.ErrUpstreamFailure)
		assert.Equal(t, 500, errs.HTTPStatus(err))
	})
}

func TestService_VerifyPayment(t *testing.T) {
	ctx := context.Background()

	validInput := func(orderID, paymentID string) usecase.VerifyPaymentInput {
		return usecase.VerifyPaymentInput{
			OrderID:   orderID,
			PaymentID: paymentID,
			Signature: ComputeSignature(orderID, paymentID, testSecret),
		}
	}
	openPayment := func() *entity.Payment {
		return &entity.Payment{OrderID: "order_1", UserEmail: testEmail, PackageID: "starter", Credits: 100, Status: entity.PaymentCreated}
	}

	t.Run("credits the package on a valid signature", func(t *testing.T) {
		h := newHarness(t)
		payment := openPayment()
		h.payments.EXPECT().GetByOrderID(mock.Anything, "order_1").Return(payment, nil)
		h.payments.EXPECT().Update(mock.Anything, payment).Return(nil)
		h.users.EXPECT().AddCredits(mock.Anything, testEmail, int64(100)).Return(balance(105), nil)

		result, err := h.service().VerifyPayment(ctx, validInput("order_1", "pay_1"))

		require.NoError(t, err)
		assert.False(t, result.AlreadyProcessed)
		assert.Equal(t, int64(100), result.CreditsAdded)
		assert.Equal(t, int64(105), result.Balance)
		assert.Equal(t, entity.PaymentPaid, payment.Status)
		assert.Equal(t, "pay_1", payment.PaymentID)
	})

	t.Run("a repeated callback credits only once", func(t *testing.T) {
		h := newHarness(t)
		payment := openPayment()
		h.payments.EXPECT().GetByOrderID(mock.Anything, "order_1").Return(payment, nil)
		h.payments.EXPECT().Update(mock.Anything, payment).Return(nil).Once()
		h.users.EXPECT().AddCredits(mock.Anything, testEmail, int64(100)).Return(balance(105), nil).Once()
		h.users.EXPECT().GetByEmail(mock.Anything, testEmail).Return(balance(105), nil)

		svc := h.service()
		first, err := svc.VerifyPayment(ctx, validInput("order_1", "pay_1"))
		require.NoError(t, err)
		second, err := svc.VerifyPayment(ctx, validInput("order_1", "pay_1"))
		require.NoError(t, err)

		assert.False(t, first.AlreadyProcessed)
		assert.True(t, second.AlreadyProcessed)
		assert.Equal(t, int64(0), second.CreditsAdded)
		assert.Equal(t, int64(105), second.Balance)
	})

	t.Run("signature mismatch rejects the order and credits nothing", func(t *testing.T) {
		h := newHarness(t)
		payment := openPayment()
		h.payments.EXPECT().GetByOrderID(ctx, "order_1").Return(payment, nil)
		h.payments.EXPECT().Update(ctx, payment).Return(nil)

		in := validInput("order_1", "pay_1")
		in.Signature = ComputeSignature("order_1", "pay_1", "wrong-secret")
		_, err := h.service().VerifyPayment(ctx, in)

		assert.ErrorIs(t, err, errs.ErrSignatureMismatch)
		assert.Equal(t, entity.PaymentRejected, payment.Status)
		h.users.AssertNotCalled(t, "AddCredits", mock.Anything, mock.Anything, mock.Anything)
		h.uow.AssertNotCalled(t, "WithinTransaction", mock.Anything, mock.Anything)
	})

	t.Run("a genuine callback after a forged one still settles", func(t *testing.T) {
		h := newHarness(t)
		payment := openPayment()
		require.NoError(t, payment.MarkRejected(h.clock))
		h.payments.EXPECT().GetByOrderID(mock.Anything, "order_1").Return(payment, nil)
		h.payments.EXPECT().Update(mock.Anything, payment).Return(nil)
		h.users.EXPECT().AddCredits(mock.Anything, testEmail, int64(100)).Return(balance(100), nil)

		result, err := h.service().VerifyPayment(ctx, validInput("order_1", "pay_1"))

		require.NoError(t, err)
		assert.Equal(t, int64(100), result.CreditsAdded)
	})

	t.Run("missing fields are invalid input", func(t *testing.T) {
		h := newHarness(t)
		for _, in := range []usecase.VerifyPaymentInput{
			{OrderID: "o", Signature: "s"},
			{PaymentID: "p", Signature: "s"},
			{PaymentID: "p", OrderID: "o"},
		} {
			_, err := h.service().VerifyPayment(ctx, in)
			assert.ErrorIs(t, err, errs.ErrInvalidInput)
		}
	})

	t.Run("unknown order is not found", func(t *testing.T) {
		h := newHarness(t)
		h.payments.EXPECT().GetByOrderID(mock.Anything, "order_x").Return(nil, errs.ErrOrderNotFound)

		_, err := h.service().VerifyPayment(ctx, validInput("order_x", "pay_1"))

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("ledger failure inside the transaction is returned", func(t *testing.T) {
		h := newHarness(t)
		payment := openPayment()
		h.payments.EXPECT().GetByOrderID(mock.Anything, "order_1").Return(payment, nil)
		h.payments.EXPECT().Update(mock.Anything, payment).Return(nil)
		h.users.EXPECT().AddCredits(mock.Anything, testEmail, int64(100)).Return(nil, errors.New("db down"))

		_, err := h.service().VerifyPayment(ctx, validInput("order_1", "pay_1"))

		assert.EqualError(t, err, "db down")
	})
}

func TestService_History(t *testing.T) {
	ctx := context.Background()
	h := newHarness(t)
	h.payments.EXPECT().ListByOwner(ctx, testEmail).Return([]*entity.Payment{{OrderID: "order_1"}}, nil)

	history, err := h.service().History(ctx, testEmail)

	require.NoError(t, err)
	assert.Len(t, history, 1)
}
