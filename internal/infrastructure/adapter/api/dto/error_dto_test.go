package dto

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

func TestNewErrorResponse(t *testing.T) {
	t.Run("insufficient credits carries amounts", func(t *testing.T) {
		resp := NewErrorResponse(errs.NewInsufficientCreditsError("a@b.co", 10, 5))

		assert.Equal(t, "insufficient credits", resp.Error)
		assert.Equal(t, errs.CodeInsufficientCredits, resp.Code)
		assert.Equal(t, map[string]int64{"required": 10, "available": 5}, resp.Details)
	})

	t.Run("format error carries the snippet", func(t *testing.T) {
		resp := NewErrorResponse(errs.NewGenerationFormatError("no json", "hello there"))

		assert.Equal(t, errs.CodeGenerationFormat, resp.Code)
		assert.Equal(t, "hello there", resp.Details.(map[string]string)["snippet"])
	})

	t.Run("validation error names the field", func(t *testing.T) {
		resp := NewErrorResponse(errs.NewValidationError("uid", errors.New("is required")))

		assert.Equal(t, errs.CodeInvalidInput, resp.Code)
		assert.Equal(t, map[string]string{"field": "uid"}, resp.Details)
	})

	t.Run("timeout hides the transport error", func(t *testing.T) {
		resp := NewErrorResponse(errors.Join(errs.ErrTimeout, errors.New("context deadline exceeded")))

		assert.Equal(t, errs.ErrTimeout.Error(), resp.Error)
		assert.Equal(t, errs.CodeTimeout, resp.Code)
	})

	t.Run("database errors are not leaked", func(t *testing.T) {
		resp := NewErrorResponse(fmt.Errorf("%w: dial tcp 10.0.0.1:5432", errs.ErrDatabaseConnection))

		assert.Equal(t, "Internal server error", resp.Error)
		assert.Equal(t, errs.CodeDatabase, resp.Code)
	})

	t.Run("gateway failures keep their message", func(t *testing.T) {
		resp := NewErrorResponse(fmt.Errorf("%w: razorpay unreachable", errs.ErrUpstreamFailure))

		assert.Contains(t, resp.Error, "razorpay unreachable")
		assert.Equal(t, errs.CodeUpstreamFailure, resp.Code)
	})
}
