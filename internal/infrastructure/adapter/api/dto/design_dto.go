package dto

import (
	"encoding/json"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// CreateDesignRequest is the body of POST /api/codetoimage
type CreateDesignRequest struct {
	UID         string          `json:"uid"`
	Description string          `json:"description"`
	ImageURL    string          `json:"imageUrl"`
	Model       string          `json:"model"`
	Code        json.RawMessage `json:"code"`
	Email       string          `json:"email"`
	Options     []string        `json:"options"`
	Language    string          `json:"language"`
	CreatedAt   string          `json:"createdAt"`
}

// ToEntity converts the request into a design
func (r CreateDesignRequest) ToEntity() *entity.Design {
	return &entity.Design{
		UID:         r.UID,
		UserEmail:   r.Email,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		Model:       r.Model,
		Language:    r.Language,
		Code:        r.Code,
		Options:     r.Options,
		CreatedAt:   r.CreatedAt,
	}
}

// UpdateDesignRequest is the body of PUT /api/codetoimage; absent fields are left unchanged
type UpdateDesignRequest struct {
	Code        json.RawMessage `json:"code"`
	ImageURL    *string         `json:"imageUrl"`
	Description *string         `json:"description"`
	CreatedAt   *string         `json:"createdAt"`
}

// ToEntity converts the request into a partial update
func (r UpdateDesignRequest) ToEntity() entity.DesignUpdate {
	code := r.Code
	if string(code) == "null" {
		code = nil
	}
	return entity.DesignUpdate{
		Code:        code,
		ImageURL:    r.ImageURL,
		Description: r.Description,
		CreatedAt:   r.CreatedAt,
	}
}

// DesignResponse is a stored design as returned to clients
type DesignResponse struct {
	ID          uint64          `json:"id"`
	UID         string          `json:"uid"`
	UserEmail   string          `json:"userEmail"`
	Model       string          `json:"model"`
	ImageURL    string          `json:"imageUrl"`
	Description string          `json:"description"`
	Language    string          `json:"language"`
	Code        json.RawMessage `json:"code"`
	Options     []string        `json:"options"`
	CreatedAt   string          `json:"createdAt"`
}

// NewDesignResponse converts a design
func NewDesignResponse(d *entity.Design) DesignResponse {
	options := d.Options
	if options == nil {
		options = []string{}
	}
	return DesignResponse{
		ID:          d.ID,
		UID:         d.UID,
		UserEmail:   d.UserEmail,
		Model:       d.Model,
		ImageURL:    d.ImageURL,
		Description: d.Description,
		Language:    d.Language,
		Code:        d.Code,
		Options:     options,
		CreatedAt:   d.CreatedAt,
	}
}

// NewDesignListResponse converts a list of designs
func NewDesignListResponse(designs []*entity.Design) []DesignResponse {
	out := make([]DesignResponse, 0, len(designs))
	for _, d := range designs {
		out = append(out, NewDesignResponse(d))
	}
	return out
}
