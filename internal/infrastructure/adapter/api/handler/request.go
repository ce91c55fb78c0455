package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	coreport "github.com/amirhossein-jamali/image2code-backend/internal/domain/port/core"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/adapter/api/middleware"
)

// bindJSON decodes the request body into dst, answering 400 on malformed input
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		middleware.AbortWithError(c, errs.NewValidationError("body", err))
		return false
	}
	return true
}

// requireQuery returns the named query parameter, answering 400 when it is empty
func requireQuery(c *gin.Context, name string) (string, bool) {
	value := c.Query(name)
	if value == "" {
		middleware.AbortWithError(c, errs.NewValidationError(name, errors.New("query parameter is required")))
		return "", false
	}
	return value, true
}

// authorize answers 403 when an authenticated caller acts on another account
func authorize(c *gin.Context, email string) bool {
	if err := middleware.CheckOwner(c, email); err != nil {
		middleware.AbortWithError(c, err)
		return false
	}
	return true
}

// fail logs err with its structured fields and writes the error response
func fail(c *gin.Context, logger coreport.Logger, msg string, err error) {
	fields := errs.LogFieldsOf(err)
	fields["path"] = c.FullPath()
	fields["request_id"] = c.GetString(middleware.RequestIDKey)

	if errs.HTTPStatus(err) >= 500 {
		logger.Error(msg, fields)
	} else {
		logger.Debug(msg, fields)
	}
	middleware.AbortWithError(c, err)
}
