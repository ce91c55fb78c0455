package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/model"
)

const userColumns = "id, name, email, credits, created_at, updated_at"

// UserRepository implements the credit ledger storage using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToUser converts a user model to an entity
func modelToUser(m *model.User) *entity.User {
	user := &entity.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	user.RestoreCredits(m.Credits)
	return user
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, email string) error {
	mapped := r.errorClassifier.mapError(err, errs.ErrUserNotFound, errs.ErrDuplicateUser)
	fields := map[string]any{
		"email":      email,
		"operation":  operation,
		"error":      err.Error(),
		"error_type": string(r.errorClassifier.Classify(err)),
	}
	if errs.IsUserNotFoundError(mapped) {
		r.logger.Debug("User not found", fields)
	} else {
		r.logger.Error("Database error on users", fields)
	}
	return mapped
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("get", result.Error, email)
	}

	return modelToUser(&userModel), nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Name:      user.Name,
		Email:     user.Email,
		Credits:   user.Credits(),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&userModel).Error; err != nil {
		return r.handleDatabaseError("create", err, user.Email)
	}
	user.ID = userModel.ID

	r.logger.Info("User created", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
		"credits": user.Credits(),
	})
	return nil
}

// DebitCredits subtracts amount in one conditional UPDATE so concurrent debits cannot overspend
func (r *UserRepository) DebitCredits(ctx context.Context, email string, amount, reserve int64) (*entity.User, error) {
	var updated []model.User
	result := r.db.WithContext(ctx).Raw(
		"UPDATE users SET credits = credits - ?, updated_at = ? WHERE email = ? AND credits - ? >= ? RETURNING "+userColumns,
		amount, r.timeProvider.Now(), email, amount, reserve,
	).Scan(&updated)
	if result.Error != nil {
		return nil, r.handleDatabaseError("debit", result.Error, email)
	}

	if len(updated) == 0 {
		// No row matched: either the user is missing or the balance is too low
		current, err := r.GetByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		r.logger.Warn("Debit rejected", map[string]any{
			"email":     email,
			"required":  amount,
			"available": current.Credits(),
			"reserve":   reserve,
		})
		return nil, errs.NewInsufficientCreditsError(email, amount, current.Credits())
	}

	r.logger.Debug("Credits debited", map[string]any{
		"email":   email,
		"amount":  amount,
		"balance": updated[0].Credits,
	})
	return modelToUser(&updated[0]), nil
}

// AddCredits adds amount to the balance
func (r *UserRepository) AddCredits(ctx context.Context, email string, amount int64) (*entity.User, error) {
	var updated []model.User
	result := r.db.WithContext(ctx).Raw(
		"UPDATE users SET credits = credits + ?, updated_at = ? WHERE email = ? RETURNING "+userColumns,
		amount, r.timeProvider.Now(), email,
	).Scan(&updated)
	if result.Error != nil {
		return nil, r.handleDatabaseError("credit", result.Error, email)
	}
	if len(updated) == 0 {
		return nil, errs.ErrUserNotFound
	}

	r.logger.Debug("Credits added", map[string]any{
		"email":   email,
		"amount":  amount,
		"balance": updated[0].Credits,
	})
	return modelToUser(&updated[0]), nil
}
