package generation

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/gateway"
)

// Generate charges the mode's cost, calls the model and parses the project.
// Validation and the balance check happen before any outbound call.
func (s *Service) Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error) {
	settings, err := s.settingsFor(req.Mode)
	if err != nil {
		return nil, err
	}

	user, err := s.charge(ctx, req.UserEmail, settings.Cost)
	if err != nil {
		return nil, err
	}

	completion, err := s.complete(ctx, gateway.CompletionRequest{
		Model:       settings.Model,
		Messages:    BuildGenerationPrompt(req),
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	})
	if err != nil {
		s.settle(ctx, req.UserEmail, settings.Cost, err)
		return nil, err
	}

	project, err := ParseProject(completion.Content)
	if err != nil {
		s.settle(ctx, req.UserEmail, settings.Cost, err)
		return nil, err
	}

	s.logger.Info("Design converted to code", map[string]any{
		"email":    req.UserEmail,
		"mode":     string(req.Mode),
		"language": string(req.Language),
		"model":    settings.Model,
		"files":    project.FileCount(),
		"balance":  user.Credits(),
	})

	return &entity.GenerationResult{
		Project:          project,
		Model:            settings.Model,
		CreditsCharged:   settings.Cost,
		CreditsRemaining: user.Credits(),
	}, nil
}
