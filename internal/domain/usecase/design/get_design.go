package design

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// GetDesign returns the design with uid, through the cache when one is configured
func (s *Service) GetDesign(ctx context.Context, uid string) (*entity.Design, error) {
	uid, err := validateUID(uid)
	if err != nil {
		return nil, err
	}

	if s.cache == nil {
		return s.designRepo.GetByUID(ctx, uid)
	}
	return s.cache.GetOrLoad(ctx, uid, func(loadCtx context.Context) (*entity.Design, error) {
		return s.designRepo.GetByUID(loadCtx, uid)
	})
}

// ListDesigns returns the owner's designs, newest first
func (s *Service) ListDesigns(ctx context.Context, email string) ([]*entity.Design, error) {
	email = entity.NormalizeEmail(email)
	if err := entity.ValidateEmail(email); err != nil {
		return nil, err
	}
	return s.designRepo.ListByOwner(ctx, email)
}
