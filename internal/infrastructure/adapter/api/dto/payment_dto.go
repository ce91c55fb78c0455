package dto

import (
	"time"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// CreateOrderRequest is the body of POST /api/payment/create-order
type CreateOrderRequest struct {
	Email     string `json:"email"`
	PackageID string `json:"packageId"`
}

// OrderResponse carries what the checkout widget needs to open
type OrderResponse struct {
	ID       string               `json:"id"`
	Amount   int64                `json:"amount"`
	Currency string               `json:"currency"`
	Key      string               `json:"key"`
	Package  entity.CreditPackage `json:"package"`
}

// VerifyPaymentRequest is the checkout callback payload
type VerifyPaymentRequest struct {
	PaymentID string `json:"razorpay_payment_id"`
	OrderID   string `json:"razorpay_order_id"`
	Signature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse reports the credits added by a verified payment
type VerifyPaymentResponse struct {
	Success          bool   `json:"success"`
	OrderID          string `json:"orderId"`
	AlreadyProcessed bool   `json:"alreadyProcessed"`
	Credits          int64  `json:"credits"`
	Balance          int64  `json:"balance"`
}

// PaymentResponse is one row of the payment history
type PaymentResponse struct {
	OrderID   string    `json:"orderId"`
	PaymentID string    `json:"paymentId,omitempty"`
	PackageID string    `json:"packageId"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
	Credits   int64     `json:"credits"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewOrderResponse converts a checkout order
func NewOrderResponse(o *usecase.CheckoutOrder) OrderResponse {
	return OrderResponse{
		ID:       o.OrderID,
		Amount:   o.Amount,
		Currency: o.Currency,
		Key:      o.KeyID,
		Package:  o.Package,
	}
}

// NewVerifyPaymentResponse converts a verification result
func NewVerifyPaymentResponse(r *usecase.VerifyPaymentResult) VerifyPaymentResponse {
	return VerifyPaymentResponse{
		Success:          true,
		OrderID:          r.OrderID,
		AlreadyProcessed: r.AlreadyProcessed,
		Credits:          r.CreditsAdded,
		Balance:          r.Balance,
	}
}

// NewPaymentHistoryResponse converts payments
func NewPaymentHistoryResponse(payments []*entity.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, PaymentResponse{
			OrderID:   p.OrderID,
			PaymentID: p.PaymentID,
			PackageID: p.PackageID,
			Amount:    p.Amount,
			Currency:  p.Currency,
			Credits:   p.Credits,
			Status:    string(p.Status),
			CreatedAt: p.CreatedAt,
		})
	}
	return out
}
