package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/core"
)

func TestPayment_Lifecycle(t *testing.T) {
	fixedTime := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()
	pkg := CreditPackage{ID: "starter", Credits: 100, Amount: 49900, Currency: "INR"}

	t.Run("created to paid", func(t *testing.T) {
		p := NewPayment("order_1", "a@b.io", pkg, mockTime)
		assert.Equal(t, PaymentCreated, p.Status)
		assert.Equal(t, int64(100), p.Credits)

		require.NoError(t, p.MarkPaid("pay_1", mockTime))
		assert.True(t, p.IsPaid())
		assert.Equal(t, "pay_1", p.PaymentID)

		assert.ErrorIs(t, p.MarkPaid("pay_2", mockTime), ErrInvalidPaymentTransition)
		assert.ErrorIs(t, p.MarkRejected(mockTime), ErrInvalidPaymentTransition)
		assert.Equal(t, "pay_1", p.PaymentID)
	})

	t.Run("created to rejected", func(t *testing.T) {
		p := NewPayment("order_2", "a@b.io", pkg, mockTime)

		require.NoError(t, p.MarkRejected(mockTime))
		assert.Equal(t, PaymentRejected, p.Status)
		assert.ErrorIs(t, p.MarkRejected(mockTime), ErrInvalidPaymentTransition)
	})

	t.Run("rejected can still be settled by a genuine payment", func(t *testing.T) {
		p := NewPayment("order_3", "a@b.io", pkg, mockTime)
		require.NoError(t, p.MarkRejected(mockTime))

		require.NoError(t, p.MarkPaid("pay_3", mockTime))
		assert.True(t, p.IsPaid())
	})
}
