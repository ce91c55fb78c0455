package user

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
	coremocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/persistence"
)

func TestSyncUser(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates a new account with the signup bonus", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		mockRepo.EXPECT().GetByEmail(ctx, "new@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "new@example.com" && user.Credits() == 20 && user.Name == "New User"
		})).Return(nil).Once()
		mockLogger.EXPECT().Info("User created", mock.Anything).Once()

		useCase := NewUserUseCase(mockRepo, 20, mockTime, mockLogger)

		user, created, err := useCase.SyncUser(ctx, "New@Example.com", " New User ")

		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(20), user.Credits())
		assert.Equal(t, fixedTime, user.CreatedAt)
	})

	t.Run("Returns the existing account untouched", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		existing := &entity.User{ID: 3, Email: "old@example.com"}
		existing.RestoreCredits(7)
		mockRepo.EXPECT().GetByEmail(ctx, "old@example.com").Return(existing, nil).Once()

		useCase := NewUserUseCase(mockRepo, 20, mockTime, mockLogger)

		user, created, err := useCase.SyncUser(ctx, "old@example.com", "Old")

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, int64(7), user.Credits())
	})

	t.Run("Concurrent creation falls back to the stored row", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)

		stored := &entity.User{ID: 9, Email: "race@example.com"}
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByEmail(ctx, "race@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(ctx, mock.Anything).Return(errs.ErrDuplicateUser).Once()
		mockRepo.EXPECT().GetByEmail(ctx, "race@example.com").Return(stored, nil).Once()

		useCase := NewUserUseCase(mockRepo, 20, mockTime, mockLogger)

		user, created, err := useCase.SyncUser(ctx, "race@example.com", "")

		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, uint64(9), user.ID)
	})

	t.Run("Invalid email", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		useCase := NewUserUseCase(mockRepo, 20, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		_, _, err := useCase.SyncUser(ctx, "nobody", "")

		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Repository failure is logged and returned", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)
		mockLogger := coremocks.NewMockLogger(t)
		dbErr := errors.New("connection refused")

		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		mockRepo.EXPECT().GetByEmail(ctx, "x@example.com").Return(nil, errs.ErrUserNotFound).Once()
		mockRepo.EXPECT().Create(ctx, mock.Anything).Return(dbErr).Once()
		mockLogger.EXPECT().Error("Failed to create user", mock.Anything).Once()

		useCase := NewUserUseCase(mockRepo, 20, mockTime, mockLogger)

		_, _, err := useCase.SyncUser(ctx, "x@example.com", "")

		assert.ErrorIs(t, err, dbErr)
	})
}

func TestGetAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		user := &entity.User{Email: "a@example.com"}
		user.RestoreCredits(99)
		mockRepo.EXPECT().GetByEmail(ctx, "a@example.com").Return(user, nil)

		useCase := NewUserUseCase(mockRepo, 0, coremocks.NewMockTimeProvider(t), coremocks.NewMockLogger(t))

		got, err := useCase.GetAccount(ctx, "A@example.com")

		require.NoError(t, err)
		assert.Equal(t, int64(99), got.Credits())
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockLogger := coremocks.NewMockLogger(t)
		mockRepo.EXPECT().GetByEmail(ctx, "a@example.com").Return(nil, errs.ErrUserNotFound)
		mockLogger.EXPECT().Debug(mock.Anything, mock.Anything).Once()

		useCase := NewUserUseCase(mockRepo, 0, coremocks.NewMockTimeProvider(t), mockLogger)

		_, err := useCase.GetAccount(ctx, "a@example.com")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}
