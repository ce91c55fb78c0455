package dto

import (
	"time"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
)

// SyncUserRequest is the body of POST /api/users/sync
type SyncUserRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AccountResponse is a user profile with its balance
type AccountResponse struct {
	ID        uint64    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Credits   int64     `json:"credits"`
	Created   bool      `json:"created"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreditsResponse represents the API response for a user's balance
type CreditsResponse struct {
	Email   string `json:"email"`
	Credits int64  `json:"credits"`
}

// NewAccountResponse converts a user
func NewAccountResponse(u *entity.User, created bool) AccountResponse {
	return AccountResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Credits:   u.Credits(),
		Created:   created,
		CreatedAt: u.CreatedAt,
	}
}
