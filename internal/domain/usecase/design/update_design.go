package design

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// UpdateDesign applies a partial update to an existing design
func (s *Service) UpdateDesign(ctx context.Context, uid string, update entity.DesignUpdate) (*entity.Design, error) {
	uid, err := validateUID(uid)
	if err != nil {
		return nil, err
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	design, err := s.designRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	design.Apply(update)
	if err := s.designRepo.Update(ctx, design); err != nil {
		return nil, err
	}
	s.invalidate(ctx, uid)

	s.logger.Info("Design updated", map[string]any{
		"uid":         uid,
		"codeChanged": len(update.Code) > 0,
	})
	return design, nil
}
