package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

func TestDesign_Apply(t *testing.T) {
	d := &Design{
		UID:         "u1",
		ImageURL:    "https://a/1.png",
		Description: "first",
		Code:        json.RawMessage(`{"a":1}`),
		CreatedAt:   "yesterday",
	}
	url := "https://a/2.png"

	d.Apply(DesignUpdate{ImageURL: &url})

	assert.Equal(t, "https://a/2.png", d.ImageURL)
	assert.Equal(t, "first", d.Description)
	assert.Equal(t, `{"a":1}`, string(d.Code))
	assert.Equal(t, "yesterday", d.CreatedAt)
}

func TestDesignUpdate_Validate(t *testing.T) {
	assert.ErrorIs(t, DesignUpdate{}.Validate(), errs.ErrInvalidInput)
	assert.ErrorIs(t, DesignUpdate{Code: json.RawMessage(`{`)}.Validate(), errs.ErrInvalidInput)

	empty := ""
	assert.NoError(t, DesignUpdate{Description: &empty}.Validate())
}
