package dto

import (
	"errors"
	"net/http"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

// ErrorResponse represents a standardized error response for the API
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Code    int    `json:"code"`
}

// SuccessResponse wraps data returned by the design endpoints
type SuccessResponse struct {
	Success bool `json:"success"`
	Data    any  `json:"data,omitempty"`
}

// NewErrorResponse builds the client facing body for err.
// Server side failures that carry no client information are reported generically.
func NewErrorResponse(err error) ErrorResponse {
	resp := ErrorResponse{
		Error: err.Error(),
		Code:  errs.ErrorCode(err),
	}

	var (
		credits    *errs.InsufficientCreditsError
		format     *errs.GenerationFormatError
		upstream   *errs.UpstreamError
		validation *errs.ValidationError
	)
	switch {
	case errors.As(err, &credits):
		resp.Error = errs.ErrInsufficientCredits.Error()
		resp.Details = map[string]int64{"required": credits.Required, "available": credits.Available}
	case errors.As(err, &format):
		resp.Error = errs.ErrGenerationFormat.Error()
		resp.Details = map[string]string{"reason": format.Reason, "snippet": format.Snippet}
	case errors.As(err, &upstream):
		resp.Details = map[string]any{"provider": upstream.Provider, "status": upstream.StatusCode}
	case errors.As(err, &validation):
		resp.Details = map[string]string{"field": validation.Field}
	case errors.Is(err, errs.ErrTimeout):
		resp.Error = errs.ErrTimeout.Error()
	case errs.HTTPStatus(err) == http.StatusInternalServerError && !errors.Is(err, errs.ErrUpstreamFailure):
		resp.Error = "Internal server error"
	}
	return resp
}
