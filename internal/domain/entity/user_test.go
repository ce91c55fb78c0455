package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coremocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/core"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser(" Jane@Example.COM ", "Jane", 20, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", user.Email)
		assert.Equal(t, "Jane", user.Name)
		assert.Equal(t, int64(20), user.Credits())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Invalid email", func(t *testing.T) {
		for _, email := range []string{"", "jane", "@example.com", "jane@", "ja ne@example.com"} {
			t.Run(email, func(t *testing.T) {
				user, err := NewUser(email, "", 0, mockTime)
				assert.ErrorIs(t, err, errs.ErrInvalidEmail)
				assert.Nil(t, user)
			})
		}
	})

	t.Run("Negative starting credits", func(t *testing.T) {
		_, err := NewUser("jane@example.com", "", -1, mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestUser_RestoreCredits(t *testing.T) {
	user := &User{}
	user.RestoreCredits(15)

	assert.Equal(t, int64(15), user.Credits())
	assert.True(t, user.UpdatedAt.IsZero())
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, ValidateAmount(1))
	assert.ErrorIs(t, ValidateAmount(0), errs.ErrInvalidAmount)
	assert.ErrorIs(t, ValidateAmount(-5), errs.ErrInvalidAmount)
}
