package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/middleware"
)

// GenerationHandler serves the code generation endpoints
type GenerationHandler struct {
	generation usecase.GenerationUseCase
	logger     coreport.Logger
}

// NewGenerationHandler creates a new generation handler instance
func NewGenerationHandler(generation usecase.GenerationUseCase, logger coreport.Logger) *GenerationHandler {
	return &GenerationHandler{
		generation: generation,
		logger:     logger,
	}
}

// Generate handles POST /api/image-to-code-ai
func (h *GenerationHandler) Generate(c *gin.Context) {
	var req dto.GenerateRequest
	if !bindJSON(c, &req) {
		return
	}

	genReq, err := entity.NewGenerationRequest(req.Description, req.ImageURL, req.Options, req.UserEmail, req.Mode, req.Language)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	if !authorize(c, genReq.UserEmail) {
		return
	}

	result, err := h.generation.Generate(c.Request.Context(), genReq)
	if err != nil {
		fail(c, h.logger, "Generation failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewGenerateResponse(result))
}

// Improve handles POST /api/improve-extra-improve-ai and answers with plain text code
func (h *GenerationHandler) Improve(c *gin.Context) {
	var req dto.ImproveRequest
	if !bindJSON(c, &req) {
		return
	}

	improveReq, err := entity.NewImproveRequest(req.Code, req.UserEmail)
	if err != nil {
		middleware.AbortWithError(c, err)
		return
	}
	if !authorize(c, improveReq.UserEmail) {
		return
	}

	code, err := h.generation.Improve(c.Request.Context(), improveReq)
	if err != nil {
		fail(c, h.logger, "Improve failed", err)
		return
	}

	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(code))
}
