package razorpay

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
)

const providerName = "razorpay"

// Config holds the Razorpay API credentials
type Config struct {
	BaseURL   string
	KeyID     string
	KeySecret string
	Timeout   time.Duration
}

// Client creates orders through the Razorpay Orders API
type Client struct {
	client *resty.Client
	keyID  string
	logger coreport.Logger
	tracer trace.Tracer
}

// NewClient creates a payment gateway for cfg
func NewClient(cfg Config, logger coreport.Logger) gateway.PaymentGateway {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.razorpay.com"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetHeader("Content-Type", "application/json")

	return &Client{
		client: cli,
		keyID:  cfg.KeyID,
		logger: logger,
		tracer: otel.Tracer("github.com/amirhossein-jamali/image2code-backend/razorpay"),
	}
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// CreateOrder registers an order with POST /v1/orders
func (c *Client) CreateOrder(ctx context.Context, req gateway.CreateOrderRequest) (*entity.Order, error) {
	ctx, span := c.tracer.Start(ctx, "razorpay.create_order",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.Int64("payment.amount", req.Amount),
			attribute.String("payment.currency", req.Currency),
		),
	)
	defer span.End()

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(orderRequest{
			Amount:   req.Amount,
			Currency: req.Currency,
			Receipt:  req.Receipt,
			Notes:    req.Notes,
		}).
		Post("/v1/orders")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, fmt.Errorf("%s create order request: %w", providerName, err)
	}

	if resp.IsError() {
		var body errorResponse
		message := resp.Status()
		if json.Unmarshal(resp.Body(), &body) == nil && body.Error.Description != "" {
			message = body.Error.Description
		}
		c.logger.Warn("Payment gateway rejected order", map[string]any{
			"status_code": resp.StatusCode(),
			"message":     message,
			"receipt":     req.Receipt,
		})
		span.SetStatus(codes.Error, message)
		return nil, errs.NewUpstreamError(providerName, resp.StatusCode(), message)
	}

	var order orderResponse
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, fmt.Errorf("decode %s order: %w", providerName, err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("%s order response carries no id", providerName)
	}
	span.SetAttributes(attribute.String("payment.order_id", order.ID))

	return &entity.Order{
		ID:       order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Receipt:  order.Receipt,
		Status:   order.Status,
	}, nil
}

// KeyID returns the public key id used by the checkout widget
func (c *Client) KeyID() string {
	return c.keyID
}
