package usecase

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// DesignUseCase manages saved designs
type DesignUseCase interface {
	CreateDesign(ctx context.Context, design *entity.Design) (*entity.Design, error)
	UpdateDesign(ctx context.Context, uid string, update entity.DesignUpdate) (*entity.Design, error)
	GetDesign(ctx context.Context, uid string) (*entity.Design, error)
	ListDesigns(ctx context.Context, email string) ([]*entity.Design, error)
	DeleteDesign(ctx context.Context, uid string) error
}
