package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
)

const (
	providerName       = "openrouter"
	maxUpstreamMessage = 300
)

// Config holds the OpenRouter connection settings
type Config struct {
	BaseURL  string
	APIKey   string
	Referer  string
	AppTitle string
	Timeout  time.Duration
}

// OpenRouterClient calls an OpenAI compatible chat completion endpoint
type OpenRouterClient struct {
	client *resty.Client
	logger coreport.Logger
	tracer trace.Tracer
}

// NewOpenRouterClient creates a model client for cfg
func NewOpenRouterClient(cfg Config, logger coreport.Logger) gateway.ModelClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://openrouter.ai/api/v1"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetAuthToken(cfg.APIKey).
		SetHeader("Content-Type", "application/json")
	if cfg.Referer != "" {
		cli.SetHeader("HTTP-Referer", cfg.Referer)
	}
	if cfg.AppTitle != "" {
		cli.SetHeader("X-Title", cfg.AppTitle)
	}

	return &OpenRouterClient{
		client: cli,
		logger: logger,
		tracer: otel.Tracer("github.com/amirhossein-jamali/image2code-backend/llm"),
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens,omitempty"`
	Temperature *float64      `json:"temperature,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

type chatPart struct {
	Type     string        `json:"type"`
	Text     string        `json:"text,omitempty"`
	ImageURL *chatImageURL `json:"image_url,omitempty"`
}

type chatImageURL struct {
	URL string `json:"url"`
}

// toChatMessages sends single text messages as plain strings and the rest as part lists
func toChatMessages(messages []gateway.ChatMessage) []chatMessage {
	out := make([]chatMessage, 0, len(messages))
	for _, m := range messages {
		if len(m.Parts) == 1 && m.Parts[0].Type == "text" {
			out = append(out, chatMessage{Role: m.Role, Content: m.Parts[0].Text})
			continue
		}
		parts := make([]chatPart, 0, len(m.Parts))
		for _, p := range m.Parts {
			switch p.Type {
			case "image_url":
				parts = append(parts, chatPart{Type: "image_url", ImageURL: &chatImageURL{URL: p.ImageURL}})
			default:
				parts = append(parts, chatPart{Type: "text", Text: p.Text})
			}
		}
		out = append(out, chatMessage{Role: m.Role, Content: parts})
	}
	return out
}

// Complete sends req to /chat/completions and returns the normalized assistant text
func (c *OpenRouterClient) Complete(ctx context.Context, req gateway.CompletionRequest) (*gateway.Completion, error) {
	ctx, span := c.tracer.Start(ctx, "llm.complete",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("llm.model", req.Model)),
	)
	defer span.End()

	body := chatRequest{
		Model:     req.Model,
		Messages:  toChatMessages(req.Messages),
		MaxTokens: req.MaxTokens,
	}
	if req.Temperature > 0 {
		t := req.Temperature
		body.Temperature = &t
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(body).
		Post("/chat/completions")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		if isTimeout(ctx, err) {
			return nil, errors.Join(errs.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%s request: %w", providerName, err)
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode()))
	text, model, perr := normalizeEnvelope(resp.Body())

	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		message := truncate(string(resp.Body()), maxUpstreamMessage)
		if perr != nil {
			message = perr.Message
		}
		c.logger.Warn("Model provider returned an error", map[string]any{
			"model":       req.Model,
			"status_code": resp.StatusCode(),
			"message":     message,
		})
		span.SetStatus(codes.Error, message)
		return nil, errs.NewUpstreamError(providerName, resp.StatusCode(), message)
	}

	if perr != nil {
		span.SetStatus(codes.Error, perr.Message)
		return nil, errs.NewUpstreamError(providerName, http.StatusBadGateway, perr.Message)
	}
	if strings.TrimSpace(text) == "" {
		return nil, errs.NewGenerationFormatError("empty model response", string(resp.Body()))
	}

	if model == "" {
		model = req.Model
	}
	return &gateway.Completion{Content: text, Model: model}, nil
}

func truncate(s string, n int) string {
	if r := []rune(s); len(r) > n {
		return string(r[:n])
	}
	return s
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
