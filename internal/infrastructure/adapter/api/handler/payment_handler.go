package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/dto"
)

// PaymentHandler serves the credit top-up endpoints
type PaymentHandler struct {
	payments usecase.PaymentUseCase
	logger   coreport.Logger
}

// NewPaymentHandler creates a new payment handler instance
func NewPaymentHandler(payments usecase.PaymentUseCase, logger coreport.Logger) *PaymentHandler {
	return &PaymentHandler{
		payments: payments,
		logger:   logger,
	}
}

// Packages handles GET /api/payment/packages
func (h *PaymentHandler) Packages(c *gin.Context) {
	c.JSON(http.StatusOK, h.payments.ListPackages())
}

// CreateOrder handles POST /api/payment/create-order
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindJSON(c, &req) {
		return
	}
	if !authorize(c, req.Email) {
		return
	}

	order, err := h.payments.CreateOrder(c.Request.Context(), req.Email, req.PackageID)
	if err != nil {
		fail(c, h.logger, "Order creation failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewOrderResponse(order))
}

// Verify handles POST /api/payment/verify, the checkout success callback
func (h *PaymentHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if !bindJSON(c, &req) {
		return
	}

	result, err := h.payments.VerifyPayment(c.Request.Context(), usecase.VerifyPaymentInput{
		PaymentID: req.PaymentID,
		OrderID:   req.OrderID,
		Signature: req.Signature,
	})
	if err != nil {
		fail(c, h.logger, "Payment verification failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewVerifyPaymentResponse(result))
}

// History handles GET /api/payment/history?email=
func (h *PaymentHandler) History(c *gin.Context) {
	email, ok := requireQuery(c, "email")
	if !ok {
		return
	}
	if !authorize(c, email) {
		return
	}

	payments, err := h.payments.History(c.Request.Context(), email)
	if err != nil {
		fail(c, h.logger, "Payment history failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPaymentHistoryResponse(payments))
}
