package payment

import (
	"context"
	"errors"
	"strings"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// VerifyPayment checks the callback signature and credits the package once.
// Crediting and the status change commit together.
func (s *Service) VerifyPayment(ctx context.Context, in usecase.VerifyPaymentInput) (*usecase.VerifyPaymentResult, error) {
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.OrderID = strings.TrimSpace(in.OrderID)
	switch {
	case in.PaymentID == "":
		return nil, errs.NewValidationError("razorpay_payment_id", errors.New("is required"))
	case in.OrderID == "":
		return nil, errs.NewValidationError("razorpay_order_id", errors.New("is required"))
	case strings.TrimSpace(in.Signature) == "":
		return nil, errs.NewValidationError("razorpay_signature", errors.New("is required"))
	}

	if !VerifySignature(in.OrderID, in.PaymentID, in.Signature, s.keySecret) {
		s.reject(ctx, in.OrderID)
		return nil, errs.ErrSignatureMismatch
	}

	result := &usecase.VerifyPaymentResult{OrderID: in.OrderID}
	err := s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		payments := s.uow.GetPaymentRepository(txCtx)
		users := s.uow.GetUserRepository(txCtx)

		payment, err := payments.GetByOrderID(txCtx, in.OrderID)
		if err != nil {
			return err
		}

		if payment.IsPaid() {
			user, err := users.GetByEmail(txCtx, payment.UserEmail)
			if err != nil {
				return err
			}
			result.AlreadyProcessed = true
			result.CreditsAdded = 0
			result.Balance = user.Credits()
			return nil
		}

		if err := payment.MarkPaid(in.PaymentID, s.timeProvider); err != nil {
			return err
		}
		if err := payments.Update(txCtx, payment); err != nil {
			return err
		}

		user, err := users.AddCredits(txCtx, payment.UserEmail, payment.Credits)
		if err != nil {
			return err
		}
		result.AlreadyProcessed = false
		result.CreditsAdded = payment.Credits
		result.Balance = user.Credits()
		return nil
	})
	if err != nil {
		s.logger.Error("Payment verification failed", map[string]any{
			"orderId":   in.OrderID,
			"paymentId": in.PaymentID,
			"error":     err.Error(),
		})
		return nil, err
	}

	if result.AlreadyProcessed {
		s.logger.Warn("Duplicate payment callback ignored", map[string]any{
			"orderId":   in.OrderID,
			"paymentId": in.PaymentID,
		})
	} else {
		s.logger.Info("Payment verified and credited", map[string]any{
			"orderId":      in.OrderID,
			"paymentId":    in.PaymentID,
			"creditsAdded": result.CreditsAdded,
			"balance":      result.Balance,
		})
	}
	return result, nil
}

// reject records a failed verification on a still-open order
func (s *Service) reject(ctx context.Context, orderID string) {
	fields := map[string]any{"orderId": orderID}

	payment, err := s.paymentRepo.GetByOrderID(ctx, orderID)
	if err != nil {
		fields["error"] = err.Error()
		s.logger.Warn("Payment signature mismatch for unknown order", fields)
		return
	}
	fields["email"] = payment.UserEmail
	if payment.Status != entity.PaymentCreated {
		s.logger.Warn("Payment signature mismatch", fields)
		return
	}

	if err := payment.MarkRejected(s.timeProvider); err == nil {
		if err := s.paymentRepo.Update(ctx, payment); err != nil {
			fields["error"] = err.Error()
		}
	}
	s.logger.Warn("Payment signature mismatch, order rejected", fields)
}
