package design

import (
	"context"
	"errors"
	"strings"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/image2code-backend/internal/domain/port/usecase"
)

// Service manages saved designs
type Service struct {
	designRepo   persistence.DesignRepository
	userRepo     persistence.UserRepository
	cache        persistence.DesignCache // optional
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewService creates a new design service. cache may be nil.
func NewService(
	designRepo persistence.DesignRepository,
	userRepo persistence.UserRepository,
	cache persistence.DesignCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) usecase.DesignUseCase {
	return &Service{
		designRepo:   designRepo,
		userRepo:     userRepo,
		cache:        cache,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func validateUID(uid string) (string, error) {
	uid = strings.TrimSpace(uid)
	if uid == "" {
		return "", errs.NewValidationError("uid", errors.New("is required"))
	}
	return uid, nil
}

// invalidate drops the cached copy; failures only cost a stale read until TTL
func (s *Service) invalidate(ctx context.Context, uid string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, uid); err != nil {
		s.logger.Warn("Failed to invalidate design cache", map[string]any{
			"uid":   uid,
			"error": err.Error(),
		})
	}
}
