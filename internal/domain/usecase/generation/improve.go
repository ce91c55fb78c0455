package generation

import (
	"context"
	"strings"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
)

// Improve charges the improve cost and returns the model's refined code
func (s *Service) Improve(ctx context.Context, req *entity.ImproveRequest) (string, error) {
	cost := s.cfg.ImproveCost
	if cost <= 0 {
		return "", errs.ErrInternalServer
	}

	if _, err := s.charge(ctx, req.UserEmail, cost); err != nil {
		return "", err
	}

	completion, err := s.complete(ctx, gateway.CompletionRequest{
		Model:       s.cfg.ImproveModel,
		Messages:    BuildImprovePrompt(req),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.settle(ctx, req.UserEmail, cost, err)
		return "", err
	}

	code := StripCodeFence(completion.Content)
	if strings.TrimSpace(code) == "" {
		err := errs.NewGenerationFormatError("empty improved code", completion.Content)
		s.settle(ctx, req.UserEmail, cost, err)
		return "", err
	}

	s.logger.Info("Code improved", map[string]any{
		"email": req.UserEmail,
		"model": s.cfg.ImproveModel,
		"bytes": len(code),
	})
	return code, nil
}
