package design

import (
	"context"
	"time"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// CreateDesign stores a new design for an existing owner
func (s *Service) CreateDesign(ctx context.Context, design *entity.Design) (*entity.Design, error) {
	design.UserEmail = entity.NormalizeEmail(design.UserEmail)
	if err := design.Validate(); err != nil {
		return nil, err
	}
	if design.CreatedAt == "" {
		design.CreatedAt = s.timeProvider.Now().Format(time.RFC3339)
	}
	if design.Options == nil {
		design.Options = []string{}
	}

	if _, err := s.userRepo.GetByEmail(ctx, design.UserEmail); err != nil {
		return nil, err
	}

	if err := s.designRepo.Create(ctx, design); err != nil {
		s.logger.Warn("Failed to create design", map[string]any{
			"uid":   design.UID,
			"email": design.UserEmail,
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Design created", map[string]any{
		"uid":      design.UID,
		"email":    design.UserEmail,
		"model":    design.Model,
		"language": design.Language,
	})
	return design, nil
}
