package dto

import "github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"

// GenerateRequest is the body of POST /api/image-to-code-ai
type GenerateRequest struct {
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Options     []string `json:"options"`
	UserEmail   string   `json:"userEmail"`
	Mode        string   `json:"mode"`
	Language    string   `json:"language"`
}

// GenerateResponse carries the generated project
type GenerateResponse struct {
	Content          *entity.GeneratedProject `json:"content"`
	Model            string                   `json:"model,omitempty"`
	CreditsCharged   int64                    `json:"creditsCharged"`
	CreditsRemaining int64                    `json:"creditsRemaining"`
}

// ImproveRequest is the body of POST /api/improve-extra-improve-ai
type ImproveRequest struct {
	Code      string `json:"code"`
	UserEmail string `json:"userEmail"`
}

// NewGenerateResponse converts a generation result
func NewGenerateResponse(r *entity.GenerationResult) GenerateResponse {
	return GenerateResponse{
		Content:          r.Project,
		Model:            r.Model,
		CreditsCharged:   r.CreditsCharged,
		CreditsRemaining: r.CreditsRemaining,
	}
}
