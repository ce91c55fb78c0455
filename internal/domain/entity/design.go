package entity

import (
	"encoding/json"
	"errors"
	"strings"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

// Design is a saved generation: the source image, the options used and the produced code
type Design struct {
	ID          uint64          // Monotonic creation marker
	UID         string          // Client-generated identifier
	UserEmail   string          // Owner
	ImageURL    string          // Location of the uploaded design image
	Description string          // Free-text prompt supplied by the user
	Model       string          // Model or mode label used for the generation
	Language    string          // Target language of the generated code
	Code        json.RawMessage // Generated project, stored verbatim
	Options     []string        // Generation options selected by the user
	CreatedAt   string          // Opaque client-visible timestamp
}

// Validate checks the fields a design needs before it can be stored
func (d *Design) Validate() error {
	switch {
	case strings.TrimSpace(d.UID) == "":
		return errs.NewValidationError("uid", errors.New("is required"))
	case strings.TrimSpace(d.ImageURL) == "":
		return errs.NewValidationError("imageUrl", errors.New("is required"))
	case strings.TrimSpace(d.Model) == "":
		return errs.NewValidationError("model", errors.New("is required"))
	case len(d.Code) == 0:
		return errs.NewValidationError("code", errors.New("is required"))
	case !json.Valid(d.Code):
		return errs.NewValidationError("code", errors.New("must be valid JSON"))
	}
	return ValidateEmail(d.UserEmail)
}

// DesignUpdate holds the optional fields of a partial design update
type DesignUpdate struct {
	Code        json.RawMessage
	ImageURL    *string
	Description *string
	CreatedAt   *string
}

// IsEmpty reports whether the update carries no field at all
func (u DesignUpdate) IsEmpty() bool {
	return len(u.Code) == 0 && u.ImageURL == nil && u.Description == nil && u.CreatedAt == nil
}

// Validate checks the update is applicable
func (u DesignUpdate) Validate() error {
	if u.IsEmpty() {
		return errs.NewValidationError("body", errors.New("at least one field must be provided"))
	}
	if len(u.Code) > 0 && !json.Valid(u.Code) {
		return errs.NewValidationError("code", errors.New("must be valid JSON"))
	}
	return nil
}

// Apply copies the present fields of the update onto the design
func (d *Design) Apply(u DesignUpdate) {
	if len(u.Code) > 0 {
		d.Code = u.Code
	}
	if u.ImageURL != nil {
		d.ImageURL = *u.ImageURL
	}
	if u.Description != nil {
		d.Description = *u.Description
	}
	if u.CreatedAt != nil {
		d.CreatedAt = *u.CreatedAt
	}
}
