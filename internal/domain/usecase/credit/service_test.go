package credit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/mocks/port/core"
	"github.com/amirhossein-jamali/image2code-backend/mocks/port/persistence"
)

// memoryLedger mimics the conditional UPDATE of the SQL repository
type memoryLedger struct {
	mu       sync.Mutex
	balances map[string]int64
}

func (m *memoryLedger) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[email]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	u := &entity.User{Email: email}
	u.RestoreCredits(bal)
	return u, nil
}

func (m *memoryLedger) Create(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.balances[user.Email] = user.Credits()
	return nil
}

func (m *memoryLedger) DebitCredits(_ context.Context, email string, amount, reserve int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[email]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	if bal-amount < reserve {
		return nil, errs.NewInsufficientCreditsError(email, amount, bal)
	}
	m.balances[email] = bal - amount
	u := &entity.User{Email: email}
	u.RestoreCredits(bal - amount)
	return u, nil
}

func (m *memoryLedger) AddCredits(_ context.Context, email string, amount int64) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	bal, ok := m.balances[email]
	if !ok {
		return nil, errs.ErrUserNotFound
	}
	m.balances[email] = bal + amount
	u := &entity.User{Email: email}
	u.RestoreCredits(bal + amount)
	return u, nil
}

func quietLogger(t *testing.T) *core.MockLogger {
	logger := core.NewMockLogger(t)
	logger.On("Debug", mock.Anything, mock.Anything).Maybe()
	logger.On("Info", mock.Anything, mock.Anything).Maybe()
	logger.On("Warn", mock.Anything, mock.Anything).Maybe()
	logger.On("Error", mock.Anything, mock.Anything).Maybe()
	return logger
}

func userWithCredits(email string, credits int64) *entity.User {
	u := &entity.User{ID: 1, Email: email}
	u.RestoreCredits(credits)
	return u
}

func TestService_GetBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("should return balance for existing user", func(t *testing.T) {
		repo := persistence.NewMockUserRepository(t)
		repo.EXPECT().GetByEmail(ctx, "user@example.com").Return(userWithCredits("user@example.com", 42), nil)

		svc := NewService(repo, 0, quietLogger(t))
		balance, err := svc.GetBalance(ctx, " User@Example.com ")

		require.NoError(t, err)
		assert.Equal(t, int64(42), balance)
	})

	t.Run("should return not found for unknown user", func(t *testing.T) {
		repo := persistence.NewMockUserRepository(t)
		repo.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, errs.ErrUserNotFound)

		svc := NewService(repo, 0, quietLogger(t))
		_, err := svc.GetBalance(ctx, "ghost@example.com")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("should reject malformed email without touching the repository", func(t *testing.T) {
		repo := persistence.NewMockUserRepository(t)

		svc := NewService(repo, 0, quietLogger(t))
		_, err := svc.GetBalance(ctx, "not-an-email")

		assert.ErrorIs(t, err, errs.ErrInvalidEmail)
	})
}

func TestService_TryDebit(t *testing.T) {
	ctx := context.Background()
	email := "user@example.com"

	t.Run("should pass amount and reserve to the repository", func(t *testing.T) {
		repo := persistence.NewMockUserRepository(t)
		repo.EXPECT().DebitCredits(ctx, email, int64(10), int64(5)).Return(userWithCredits(email, 5), nil)

		svc := NewService(repo, 5, quietLogger(t))
		user, err := svc.TryDebit(ctx, email, 10)

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.Credits())
	})

	t.Run("should surface insufficient credits", func(t *testing.T) {
		repo := persistence.NewMockUserRepository(t)
		repo.EXPECT().DebitCredits(ctx, email, int64(10), int64(0)).
			Return(nil, errs.NewInsufficientCreditsError(email, 10, 5))

		svc := NewService(repo, 0, quietLogger(t))
		user, err := svc.TryDebit(ctx, email, 10)

		assert.Nil(t, user)
		assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		var detailed *errs.InsufficientCreditsError
		require.True(t, errors.As(err, &detailed))
		assert.Equal(t, int64(5), detailed.Available)
	})

	t.Run("should reject non-positive amounts", func(t *testing.T) {
		repo := persistence.NewMockUserRepository(t)
		svc := NewService(repo, 0, quietLogger(t))

		for _, amount := range []int64{0, -1} {
			_, err := svc.TryDebit(ctx, email, amount)
			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		}
	})

	t.Run("negative reserve is clamped to zero", func(t *testing.T) {
		repo := persistence.NewMockUserRepository(t)
		repo.EXPECT().DebitCredits(ctx, email, int64(1), int64(0)).Return(userWithCredits(email, 0), nil)

		svc := NewService(repo, -10, quietLogger(t))
		_, err := svc.TryDebit(ctx, email, 1)

		assert.NoError(t, err)
	})
}

func TestService_SequentialDebitsNeverOverspend(t *testing.T) {
	ctx := context.Background()
	email := "user@example.com"
	ledger := &memoryLedger{balances: map[string]int64{email: 100}}
	svc := NewService(ledger, 0, quietLogger(t))

	amounts := []int64{10, 20, 30, 25, 30, 10, 5}
	var charged int64
	for _, amount := range amounts {
		if _, err := svc.TryDebit(ctx, email, amount); err == nil {
			charged += amount
		} else {
			assert.ErrorIs(t, err, errs.ErrInsufficientCredits)
		}
		balance, err := svc.GetBalance(ctx, email)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, balance, int64(0))
	}

	balance, err := svc.GetBalance(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, int64(100)-charged, balance)
	// 10+20+30+25 = 85, then 30 is rejected, 10 brings it to 95, 5 to 100
	assert.Equal(t, int64(100), charged)
	assert.Equal(t, int64(0), balance)
}

func TestService_ConcurrentDebitsNeverOverspend(t *testing.T) {
	ctx := context.Background()
	email := "user@example.com"
	ledger := &memoryLedger{balances: map[string]int64{email: 50}}
	svc := NewService(ledger, 0, quietLogger(t))

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.TryDebit(ctx, email, 10); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	balance, err := svc.GetBalance(ctx, email)
	require.NoError(t, err)
	assert.Equal(t, 5, succeeded)
	assert.Equal(t, int64(0), balance)
}

func TestService_CreditAndRefund(t *testing.T) {
	ctx := context.Background()
	email := "user@example.com"

	t.Run("credit adds to the balance", func(t *testing.T) {
		ledger := &memoryLedger{balances: map[string]int64{email: 5}}
		svc := NewService(ledger, 0, quietLogger(t))

		user, err := svc.Credit(ctx, email, 100)

		require.NoError(t, err)
		assert.Equal(t, int64(105), user.Credits())
	})

	t.Run("refund restores a debit", func(t *testing.T) {
		ledger := &memoryLedger{balances: map[string]int64{email: 15}}
		svc := NewService(ledger, 0, quietLogger(t))

		_, err := svc.TryDebit(ctx, email, 10)
		require.NoError(t, err)
		require.NoError(t, svc.Refund(ctx, email, 10))

		balance, err := svc.GetBalance(ctx, email)
		require.NoError(t, err)
		assert.Equal(t, int64(15), balance)
	})

	t.Run("refund of unknown user fails", func(t *testing.T) {
		ledger := &memoryLedger{balances: map[string]int64{}}
		svc := NewService(ledger, 0, quietLogger(t))

		err := svc.Refund(ctx, "ghost@example.com", 10)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
