package repository

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/logger"
	coremocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/core"
)

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:                 gormlogger.Discard,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db, mock
}

func fixedClock(t *testing.T) *coremocks.MockTimeProvider {
	tp := coremocks.NewMockTimeProvider(t)
	tp.EXPECT().Now().Return(fixedNow).Maybe()
	return tp
}

var userCols = []string{"id", "name", "email", "credits", "created_at", "updated_at"}

func TestErrorClassifier(t *testing.T) {
	c := NewErrorClassifier()

	assert.Equal(t, DuplicateKeyError, c.Classify(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.Equal(t, LockError, c.Classify(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.Equal(t, LockError, c.Classify(&pgconn.PgError{Code: pgerrcode.DeadlockDetected}))
	assert.Equal(t, ConnectionError, c.Classify(&pgconn.PgError{Code: pgerrcode.AdminShutdown}))
	assert.Equal(t, ConstraintError, c.Classify(&pgconn.PgError{Code: pgerrcode.CheckViolation}))
	assert.Equal(t, ContextError, c.Classify(context.DeadlineExceeded))
	assert.Equal(t, ErrorType(""), c.Classify(errors.New("syntax")))

	assert.True(t, c.IsTransientError(&pgconn.PgError{Code: pgerrcode.SerializationFailure}))
	assert.False(t, c.IsTransientError(&pgconn.PgError{Code: pgerrcode.UniqueViolation}))
	assert.False(t, c.IsTransientError(context.Canceled))
}

func TestUserRepository_GetByEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(3, "Ada", "ada@example.com", 42, fixedNow, fixedNow))

		user, err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).GetByEmail(ctx, "ada@example.com")

		require.NoError(t, err)
		assert.Equal(t, uint64(3), user.ID)
		assert.Equal(t, int64(42), user.Credits())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(sqlmock.NewRows(userCols))

		_, err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).GetByEmail(ctx, "ghost@example.com")

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestUserRepository_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns the generated id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "users"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

		user, err := entity.NewUser("new@example.com", "New", 30, fixedClock(t))
		require.NoError(t, err)
		require.NoError(t, NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).Create(ctx, user))

		assert.Equal(t, uint64(9), user.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unique violation is a duplicate user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "users"`).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		user, _ := entity.NewUser("dup@example.com", "", 0, fixedClock(t))
		err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).Create(ctx, user)

		assert.ErrorIs(t, err, errs.ErrDuplicateUser)
	})
}

func TestUserRepository_DebitCredits(t *testing.T) {
	ctx := context.Background()
	email := "ada@example.com"

	t.Run("conditional update returns the new balance", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET credits = credits - \$1, updated_at = \$2 WHERE email = \$3 AND credits - \$4 >= \$5 RETURNING`).
			WithArgs(int64(10), sqlmock.AnyArg(), email, int64(10), int64(0)).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "Ada", email, 5, fixedNow, fixedNow))

		user, err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).DebitCredits(ctx, email, 10, 0)

		require.NoError(t, err)
		assert.Equal(t, int64(5), user.Credits())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row with an existing user is insufficient credits", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET credits = credits -`).WillReturnRows(sqlmock.NewRows(userCols))
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "Ada", email, 5, fixedNow, fixedNow))

		_, err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).DebitCredits(ctx, email, 10, 0)

		var insufficient *errs.InsufficientCreditsError
		require.True(t, errors.As(err, &insufficient))
		assert.Equal(t, int64(5), insufficient.Available)
		assert.Equal(t, int64(10), insufficient.Required)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no matching row and no user is not found", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET credits = credits -`).WillReturnRows(sqlmock.NewRows(userCols))
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(sqlmock.NewRows(userCols))

		_, err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).DebitCredits(ctx, email, 10, 0)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})

	t.Run("check constraint surfaces as constraint violation", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET credits = credits -`).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.CheckViolation, ConstraintName: "credits_non_negative"})

		_, err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).DebitCredits(ctx, email, 10, 0)

		assert.ErrorIs(t, err, errs.ErrConstraintViolation)
		assert.ErrorContains(t, err, "credits_non_negative")
	})
}

func TestUserRepository_AddCredits(t *testing.T) {
	ctx := context.Background()

	t.Run("adds to the balance", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET credits = credits \+ \$1`).
			WillReturnRows(sqlmock.NewRows(userCols).AddRow(1, "", "ada@example.com", 105, fixedNow, fixedNow))

		user, err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).AddCredits(ctx, "ada@example.com", 100)

		require.NoError(t, err)
		assert.Equal(t, int64(105), user.Credits())
	})

	t.Run("unknown user", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`UPDATE users SET credits = credits \+`).WillReturnRows(sqlmock.NewRows(userCols))

		_, err := NewUserRepository(db, fixedClock(t), logger.NewNoopLogger()).AddCredits(ctx, "ghost@example.com", 1)

		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

var designCols = []string{"id", "uid", "user_email", "model", "image_url", "description", "language", "code", "options", "created_at"}

func TestDesignRepository(t *testing.T) {
	ctx := context.Background()
	code := `{"projectTitle": "Pricing",   "files": {"/App.js": {"code": "x"}}}`

	t.Run("create fills the id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "imagetocode"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))

		design := &entity.Design{UID: "d-1", UserEmail: "a@b.co", ImageURL: "https://x/y.png", Model: "basic", Code: json.RawMessage(code)}
		require.NoError(t, NewDesignRepository(db, logger.NewNoopLogger()).Create(ctx, design))

		assert.Equal(t, uint64(7), design.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate uid", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "imagetocode"`).WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		design := &entity.Design{UID: "d-1", Code: json.RawMessage(code)}
		err := NewDesignRepository(db, logger.NewNoopLogger()).Create(ctx, design)

		assert.ErrorIs(t, err, errs.ErrDuplicateDesign)
	})

	t.Run("get returns the newest row with code bytes intact", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "imagetocode" WHERE uid = \$1 ORDER BY id DESC`).
			WillReturnRows(sqlmock.NewRows(designCols).
				AddRow(7, "d-1", "a@b.co", "basic", "https://x/y.png", "", "react-tailwind", []byte(code), []byte(`["dark"]`), "2024-05-01"))

		design, err := NewDesignRepository(db, logger.NewNoopLogger()).GetByUID(ctx, "d-1")

		require.NoError(t, err)
		assert.Equal(t, code, string(design.Code))
		assert.Equal(t, []string{"dark"}, design.Options)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("get of unknown uid", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "imagetocode"`).WillReturnRows(sqlmock.NewRows(designCols))

		_, err := NewDesignRepository(db, logger.NewNoopLogger()).GetByUID(ctx, "nope")

		assert.ErrorIs(t, err, errs.ErrDesignNotFound)
	})

	t.Run("update of unknown uid", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "imagetocode" SET`).WillReturnResult(sqlmock.NewResult(0, 0))

		err := NewDesignRepository(db, logger.NewNoopLogger()).Update(ctx, &entity.Design{UID: "nope", Code: json.RawMessage(`{}`)})

		assert.ErrorIs(t, err, errs.ErrDesignNotFound)
	})

	t.Run("list is owner scoped", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "imagetocode" WHERE user_email = \$1 ORDER BY id DESC`).
			WithArgs("a@b.co").
			WillReturnRows(sqlmock.NewRows(designCols).
				AddRow(8, "d-2", "a@b.co", "ultra", "u", "", "", []byte(`{}`), []byte(`[]`), "").
				AddRow(7, "d-1", "a@b.co", "basic", "u", "", "", []byte(`{}`), []byte(`[]`), ""))

		list, err := NewDesignRepository(db, logger.NewNoopLogger()).ListByOwner(ctx, "a@b.co")

		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "d-2", list[0].UID)
	})

	t.Run("delete", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`DELETE FROM "imagetocode" WHERE uid = \$1`).WithArgs("d-1").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec(`DELETE FROM "imagetocode"`).WithArgs("d-1").WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewDesignRepository(db, logger.NewNoopLogger())
		assert.NoError(t, repo.Delete(ctx, "d-1"))
		assert.ErrorIs(t, repo.Delete(ctx, "d-1"), errs.ErrDesignNotFound)
	})
}

var paymentCols = []string{"id", "order_id", "payment_id", "user_email", "package_id", "amount", "currency", "credits", "status", "created_at", "updated_at"}

func TestPaymentRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get locks the row", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "payments" WHERE order_id = \$1 .*FOR UPDATE`).
			WillReturnRows(sqlmock.NewRows(paymentCols).
				AddRow(1, "order_1", nil, "a@b.co", "starter", 49900, "INR", 100, "created", fixedNow, fixedNow))

		p, err := NewPaymentRepository(db, logger.NewNoopLogger()).GetByOrderID(ctx, "order_1")

		require.NoError(t, err)
		assert.Equal(t, entity.PaymentCreated, p.Status)
		assert.Empty(t, p.PaymentID)
		assert.Equal(t, int64(100), p.Credits)
	})

	t.Run("unknown order", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`SELECT \* FROM "payments"`).WillReturnRows(sqlmock.NewRows(paymentCols))

		_, err := NewPaymentRepository(db, logger.NewNoopLogger()).GetByOrderID(ctx, "order_x")

		assert.ErrorIs(t, err, errs.ErrOrderNotFound)
	})

	t.Run("update writes status and payment id", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectExec(`UPDATE "payments" SET`).WillReturnResult(sqlmock.NewResult(0, 1))

		err := NewPaymentRepository(db, logger.NewNoopLogger()).Update(ctx, &entity.Payment{
			OrderID: "order_1", PaymentID: "pay_1", Status: entity.PaymentPaid, UpdatedAt: fixedNow,
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create", func(t *testing.T) {
		db, mock := newMockDB(t)
		mock.ExpectQuery(`INSERT INTO "payments"`).WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(4))

		p := entity.NewPayment("order_1", "a@b.co", entity.CreditPackage{ID: "starter", Credits: 100, Amount: 49900, Currency: "INR"}, fixedClock(t))
		require.NoError(t, NewPaymentRepository(db, logger.NewNoopLogger()).Create(ctx, p))

		assert.Equal(t, uint64(4), p.ID)
	})
}
