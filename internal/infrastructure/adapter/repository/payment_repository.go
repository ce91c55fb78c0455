package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/model"
)

// PaymentRepository implements PaymentRepository interface using GORM
type PaymentRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewPaymentRepository creates a new PaymentRepository instance
func NewPaymentRepository(db *gorm.DB, logger coreport.Logger) *PaymentRepository {
	return &PaymentRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// paymentToModel converts a payment entity to a database model
func paymentToModel(p *entity.Payment) *model.Payment {
	m := &model.Payment{
		ID:        p.ID,
		OrderID:   p.OrderID,
		UserEmail: p.UserEmail,
		PackageID: p.PackageID,
		Amount:    p.Amount,
		Currency:  p.Currency,
		Credits:   p.Credits,
		Status:    string(p.Status),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.PaymentID != "" {
		paymentID := p.PaymentID
		m.PaymentID = &paymentID
	}
	return m
}

func modelToPayment(m *model.Payment) *entity.Payment {
	p := &entity.Payment{
		ID:        m.ID,
		OrderID:   m.OrderID,
		UserEmail: m.UserEmail,
		PackageID: m.PackageID,
		Amount:    m.Amount,
		Currency:  m.Currency,
		Credits:   m.Credits,
		Status:    entity.PaymentStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.PaymentID != nil {
		p.PaymentID = *m.PaymentID
	}
	return p
}

func (r *PaymentRepository) handleDatabaseError(operation string, err error, orderID string) error {
	// A unique violation here is a payment id reused across orders
	mapped := r.errorClassifier.mapError(err, errs.ErrOrderNotFound, errs.ErrConstraintViolation)
	if !errs.IsNotFoundError(mapped) {
		r.logger.Error("Database error on payments", map[string]any{
			"order_id":   orderID,
			"operation":  operation,
			"error":      err.Error(),
			"error_type": string(r.errorClassifier.Classify(err)),
		})
	}
	return mapped
}

// Create records a new order
func (r *PaymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	m := paymentToModel(payment)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return r.handleDatabaseError("create", err, payment.OrderID)
	}
	payment.ID = m.ID

	r.logger.Info("Payment order recorded", map[string]any{
		"order_id": payment.OrderID,
		"email":    payment.UserEmail,
		"package":  payment.PackageID,
	})
	return nil
}

// GetByOrderID loads a payment by order id with a row lock held until the surrounding transaction ends
func (r *PaymentRepository) GetByOrderID(ctx context.Context, orderID string) (*entity.Payment, error) {
	var m model.Payment
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_id = ?", orderID).
		Take(&m).Error
	if err != nil {
		return nil, r.handleDatabaseError("get", err, orderID)
	}
	return modelToPayment(&m), nil
}

// Update persists status and payment id changes
func (r *PaymentRepository) Update(ctx context.Context, payment *entity.Payment) error {
	updates := map[string]any{
		"status":     string(payment.Status),
		"updated_at": payment.UpdatedAt,
	}
	if payment.PaymentID != "" {
		updates["payment_id"] = payment.PaymentID
	}

	result := r.db.WithContext(ctx).Model(&model.Payment{}).
		Where("order_id = ?", payment.OrderID).
		Updates(updates)
	if result.Error != nil {
		return r.handleDatabaseError("update", result.Error, payment.OrderID)
	}
	if result.RowsAffected == 0 {
		return errs.ErrOrderNotFound
	}
	return nil
}

// ListByOwner returns the owner's payments, newest first
func (r *PaymentRepository) ListByOwner(ctx context.Context, email string) ([]*entity.Payment, error) {
	var rows []model.Payment
	err := r.db.WithContext(ctx).Where("user_email = ?", email).Order("id DESC").Find(&rows).Error
	if err != nil {
		return nil, r.handleDatabaseError("list", err, "")
	}

	payments := make([]*entity.Payment, 0, len(rows))
	for i := range rows {
		payments = append(payments, modelToPayment(&rows[i]))
	}
	return payments, nil
}
