package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/middleware"
)

// DesignHandler serves the saved design endpoints under /api/codetoimage
type DesignHandler struct {
	designs usecase.DesignUseCase
	logger  coreport.Logger
}

// NewDesignHandler creates a new design handler instance
func NewDesignHandler(designs usecase.DesignUseCase, logger coreport.Logger) *DesignHandler {
	return &DesignHandler{
		designs: designs,
		logger:  logger,
	}
}

// Create handles POST /api/codetoimage
func (h *DesignHandler) Create(c *gin.Context) {
	var req dto.CreateDesignRequest
	if !bindJSON(c, &req) {
		return
	}
	if !authorize(c, req.Email) {
		return
	}

	design, err := h.designs.CreateDesign(c.Request.Context(), req.ToEntity())
	if err != nil {
		fail(c, h.logger, "Design create failed", err)
		return
	}

	c.JSON(http.StatusCreated, dto.SuccessResponse{Success: true, Data: dto.NewDesignResponse(design)})
}

// Update handles PUT /api/codetoimage?uid=
func (h *DesignHandler) Update(c *gin.Context) {
	uid, ok := requireQuery(c, "uid")
	if !ok {
		return
	}
	var req dto.UpdateDesignRequest
	if !bindJSON(c, &req) {
		return
	}
	if !h.ownsDesign(c, uid) {
		return
	}

	design, err := h.designs.UpdateDesign(c.Request.Context(), uid, req.ToEntity())
	if err != nil {
		fail(c, h.logger, "Design update failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Data: dto.NewDesignResponse(design)})
}

// Get handles GET /api/codetoimage with either ?uid= for one design or ?email= for the owner's list
func (h *DesignHandler) Get(c *gin.Context) {
	if uid := c.Query("uid"); uid != "" {
		design, err := h.designs.GetDesign(c.Request.Context(), uid)
		if err != nil {
			fail(c, h.logger, "Design lookup failed", err)
			return
		}
		if !authorize(c, design.UserEmail) {
			return
		}
		c.JSON(http.StatusOK, dto.NewDesignResponse(design))
		return
	}

	email, ok := requireQuery(c, "email")
	if !ok {
		return
	}
	if !authorize(c, email) {
		return
	}

	designs, err := h.designs.ListDesigns(c.Request.Context(), email)
	if err != nil {
		fail(c, h.logger, "Design list failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true, Data: dto.NewDesignListResponse(designs)})
}

// Delete handles DELETE /api/codetoimage?uid=
func (h *DesignHandler) Delete(c *gin.Context) {
	uid, ok := requireQuery(c, "uid")
	if !ok {
		return
	}
	if !h.ownsDesign(c, uid) {
		return
	}

	if err := h.designs.DeleteDesign(c.Request.Context(), uid); err != nil {
		fail(c, h.logger, "Design delete failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// ownsDesign loads the design only when a caller is authenticated and checks it belongs to them
func (h *DesignHandler) ownsDesign(c *gin.Context, uid string) bool {
	if _, authenticated := middleware.AuthenticatedEmail(c); !authenticated {
		return true
	}
	design, err := h.designs.GetDesign(c.Request.Context(), uid)
	if err != nil {
		fail(c, h.logger, "Design lookup failed", err)
		return false
	}
	return authorize(c, design.UserEmail)
}
