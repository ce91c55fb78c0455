package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/dto"
)

// UserHandler handles account related HTTP requests
type UserHandler struct {
	userUseCase   usecase.UserUseCase
	creditUseCase usecase.CreditUseCase
	logger        coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	creditUseCase usecase.CreditUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase:   userUseCase,
		creditUseCase: creditUseCase,
		logger:        logger,
	}
}

// Sync handles POST /api/users/sync, creating the account on first sign in
func (h *UserHandler) Sync(c *gin.Context) {
	var req dto.SyncUserRequest
	if !bindJSON(c, &req) {
		return
	}
	if !authorize(c, req.Email) {
		return
	}

	user, created, err := h.userUseCase.SyncUser(c.Request.Context(), req.Email, req.Name)
	if err != nil {
		fail(c, h.logger, "User sync failed", err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, dto.NewAccountResponse(user, created))
}

// GetCredits handles GET /api/users/credits?email=
func (h *UserHandler) GetCredits(c *gin.Context) {
	email, ok := requireQuery(c, "email")
	if !ok {
		return
	}
	email = entity.NormalizeEmail(email)
	if !authorize(c, email) {
		return
	}

	balance, err := h.creditUseCase.GetBalance(c.Request.Context(), email)
	if err != nil {
		fail(c, h.logger, "Balance lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, dto.CreditsResponse{
		Email:   email,
		Credits: balance,
	})
}
