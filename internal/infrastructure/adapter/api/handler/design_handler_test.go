package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/logger"
	usecasemocks "github.com/amirhossein-jamali/image2code-backend/mocks/port/usecase"
)

const designCode = `{"projectTitle":"Shop","files":{"index.html":{"code":"<h1>  hi</h1>"}}}`

func setupDesigns(t *testing.T, caller string) (*usecasemocks.MockDesignUseCase, http.Handler) {
	designs := usecasemocks.NewMockDesignUseCase(t)
	h := NewDesignHandler(designs, logger.NewNoopLogger())

	r := newTestRouter(caller)
	r.POST("/api/codetoimage", h.Create)
	r.PUT("/api/codetoimage", h.Update)
	r.GET("/api/codetoimage", h.Get)
	r.DELETE("/api/codetoimage", h.Delete)
	return designs, r
}

func storedDesign() *entity.Design {
	return &entity.Design{
		ID:        7,
		UID:       "d-1",
		UserEmail: "alice@example.com",
		ImageURL:  "https://img.example.com/a.png",
		Model:     "ultra",
		Language:  "html-css",
		Code:      json.RawMessage(designCode),
		CreatedAt: "2026-01-02T03:04:05Z",
	}
}

func TestDesignHandler_Create(t *testing.T) {
	t.Run("stores the design", func(t *testing.T) {
		designs, r := setupDesigns(t, "")
		designs.EXPECT().CreateDesign(mock.Anything, mock.MatchedBy(func(d *entity.Design) bool {
			return d.UID == "d-1" && d.UserEmail == "alice@example.com" && string(d.Code) == designCode
		})).Return(storedDesign(), nil).Once()

		w := doJSON(r, http.MethodPost, "/api/codetoimage", `{"uid":"d-1","imageUrl":"https://img.example.com/a.png","model":"ultra","email":"alice@example.com","code":`+designCode+`}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		body := decode[map[string]json.RawMessage](t, w)
		assert.JSONEq(t, `true`, string(body["success"]))
		var data map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(body["data"], &data))
		assert.JSONEq(t, designCode, string(data["code"]))
		assert.JSONEq(t, `[]`, string(data["options"]))
	})

	t.Run("duplicate uid", func(t *testing.T) {
		designs, r := setupDesigns(t, "")
		designs.EXPECT().CreateDesign(mock.Anything, mock.Anything).Return(nil, errs.ErrDuplicateDesign).Once()

		w := doJSON(r, http.MethodPost, "/api/codetoimage", `{"uid":"d-1","email":"alice@example.com"}`)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("foreign owner is forbidden", func(t *testing.T) {
		_, r := setupDesigns(t, "bob@example.com")
		w := doJSON(r, http.MethodPost, "/api/codetoimage", `{"uid":"d-1","email":"alice@example.com"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestDesignHandler_Get(t *testing.T) {
	t.Run("by uid returns the bare row", func(t *testing.T) {
		designs, r := setupDesigns(t, "")
		designs.EXPECT().GetDesign(mock.Anything, "d-1").Return(storedDesign(), nil).Once()

		w := doJSON(r, http.MethodGet, "/api/codetoimage?uid=d-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[map[string]json.RawMessage](t, w)
		assert.JSONEq(t, `"d-1"`, string(body["uid"]))
		assert.JSONEq(t, designCode, string(body["code"]))
	})

	t.Run("by email lists the owner's designs", func(t *testing.T) {
		designs, r := setupDesigns(t, "")
		designs.EXPECT().ListDesigns(mock.Anything, "alice@example.com").
			Return([]*entity.Design{storedDesign(), storedDesign()}, nil).Once()

		w := doJSON(r, http.MethodGet, "/api/codetoimage?email=alice@example.com", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		body := decode[struct {
			Success bool             `json:"success"`
			Data    []map[string]any `json:"data"`
		}](t, w)
		assert.True(t, body.Success)
		assert.Len(t, body.Data, 2)
	})

	t.Run("without uid or email", func(t *testing.T) {
		_, r := setupDesigns(t, "")
		w := doJSON(r, http.MethodGet, "/api/codetoimage", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		designs, r := setupDesigns(t, "")
		designs.EXPECT().GetDesign(mock.Anything, "missing").Return(nil, errs.ErrDesignNotFound).Once()

		w := doJSON(r, http.MethodGet, "/api/codetoimage?uid=missing", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, errs.CodeDesignNotFound, decode[errorBody](t, w).Code)
	})

	t.Run("another owner's design is forbidden", func(t *testing.T) {
		designs, r := setupDesigns(t, "bob@example.com")
		designs.EXPECT().GetDesign(mock.Anything, "d-1").Return(storedDesign(), nil).Once()

		w := doJSON(r, http.MethodGet, "/api/codetoimage?uid=d-1", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestDesignHandler_Update(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		designs, r := setupDesigns(t, "")
		designs.EXPECT().UpdateDesign(mock.Anything, "d-1", mock.MatchedBy(func(u entity.DesignUpdate) bool {
			return u.Code == nil && u.Description != nil && *u.Description == "new" && u.ImageURL == nil
		})).Return(storedDesign(), nil).Once()

		w := doJSON(r, http.MethodPut, "/api/codetoimage?uid=d-1", `{"description":"new"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("uid is required", func(t *testing.T) {
		_, r := setupDesigns(t, "")
		w := doJSON(r, http.MethodPut, "/api/codetoimage", `{"description":"new"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("owner check runs before the update", func(t *testing.T) {
		designs, r := setupDesigns(t, "bob@example.com")
		designs.EXPECT().GetDesign(mock.Anything, "d-1").Return(storedDesign(), nil).Once()

		w := doJSON(r, http.MethodPut, "/api/codetoimage?uid=d-1", `{"description":"new"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestDesignHandler_Delete(t *testing.T) {
	t.Run("deletes", func(t *testing.T) {
		designs, r := setupDesigns(t, "alice@example.com")
		designs.EXPECT().GetDesign(mock.Anything, "d-1").Return(storedDesign(), nil).Once()
		designs.EXPECT().DeleteDesign(mock.Anything, "d-1").Return(nil).Once()

		w := doJSON(r, http.MethodDelete, "/api/codetoimage?uid=d-1", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"success":true}`, w.Body.String())
	})

	t.Run("missing design", func(t *testing.T) {
		designs, r := setupDesigns(t, "")
		designs.EXPECT().DeleteDesign(mock.Anything, "gone").Return(errs.ErrDesignNotFound).Once()

		w := doJSON(r, http.MethodDelete, "/api/codetoimage?uid=gone", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
