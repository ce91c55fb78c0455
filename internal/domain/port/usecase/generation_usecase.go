package usecase

import (
	"context"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// GenerationUseCase turns designs into code through the model
type GenerationUseCase interface {
	// Generate charges the mode's cost and returns the generated project
	Generate(ctx context.Context, req *entity.GenerationRequest) (*entity.GenerationResult, error)

	// Improve charges the improve cost and returns the refined code
	Improve(ctx context.Context, req *entity.ImproveRequest) (string, error)
}
