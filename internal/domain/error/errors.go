package error

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidInput        = 4000
	CodeUnauthorized        = 4010
	CodeInsufficientCredits = 4020
	CodeForbidden           = 4030
	CodeSignatureMismatch   = 4004
	CodeUserNotFound        = 4040
	CodeDesignNotFound      = 4041
	CodeOrderNotFound       = 4042
	CodeNotFound            = 4049
	CodeTimeout             = 4080
	CodeDuplicateDesign     = 4090
	CodeDuplicateUser       = 4091
	CodeRateLimited         = 4290

	// 5xxx - Server errors
	CodeInternalServer   = 5000
	CodeGenerationFormat = 5001
	CodeUpstreamFailure  = 5020
	CodeDatabase         = 5030
)

// Base error types
var (
	// ErrInvalidInput is returned when a request is missing required fields or carries malformed values
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidAmount is returned when a credit amount is zero or negative
	ErrInvalidAmount = errors.New("amount must be positive")

	// ErrInvalidEmail is returned when the owner email is empty or malformed
	ErrInvalidEmail = errors.New("invalid email")

	// ErrInvalidMode is returned when the generation mode is not one of the known tiers
	ErrInvalidMode = errors.New("invalid generation mode")

	// ErrInvalidLanguage is returned when the target language is not supported
	ErrInvalidLanguage = errors.New("invalid target language")

	// ErrInsufficientCredits is returned when a debit would take the balance under the reserve
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrUserNotFound is returned when no account matches the email
	ErrUserNotFound = errors.New("user not found")

	// ErrDesignNotFound is returned when no design matches the uid
	ErrDesignNotFound = errors.New("design not found")

	// ErrOrderNotFound is returned when no payment order matches the order id
	ErrOrderNotFound = errors.New("order not found")

	// ErrPackageNotFound is returned when a credit package id is unknown
	ErrPackageNotFound = errors.New("credit package not found")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateDesign is returned when a design with the same uid already exists
	ErrDuplicateDesign = errors.New("design with this uid already exists")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrGenerationFormat is returned when the model output cannot be parsed into a project
	ErrGenerationFormat = errors.New("AI response format error")

	// ErrTimeout is returned when the model call exceeds its deadline
	ErrTimeout = errors.New("generation timed out")

	// ErrSignatureMismatch is returned when a payment signature does not verify
	ErrSignatureMismatch = errors.New("payment signature mismatch")

	// ErrUpstreamFailure is returned when an external provider answers with an error
	ErrUpstreamFailure = errors.New("upstream provider failure")

	// ErrUnauthorized is returned when the bearer token is missing or invalid
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the authenticated user acts on another user's resources
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited is returned when a caller exceeds the request budget
	ErrRateLimited = errors.New("too many requests")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientCredits):
		return CodeInsufficientCredits
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrDesignNotFound):
		return CodeDesignNotFound
	case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrPackageNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrNotFound):
		return CodeNotFound
	case errors.Is(err, ErrDuplicateDesign):
		return CodeDuplicateDesign
	case errors.Is(err, ErrDuplicateUser):
		return CodeDuplicateUser
	case errors.Is(err, ErrSignatureMismatch):
		return CodeSignatureMismatch
	case errors.Is(err, ErrTimeout):
		return CodeTimeout
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrRateLimited):
		return CodeRateLimited
	case IsInvalidInputError(err):
		return CodeInvalidInput
	case errors.Is(err, ErrGenerationFormat):
		return CodeGenerationFormat
	case errors.Is(err, ErrUpstreamFailure):
		return CodeUpstreamFailure
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabase
	default:
		return CodeInternalServer
	}
}

// HTTPStatus maps a domain error to the HTTP status returned to clients
func HTTPStatus(err error) int {
	var upstream *UpstreamError
	if errors.As(err, &upstream) && upstream.StatusCode >= 400 && upstream.StatusCode <= 599 {
		return upstream.StatusCode
	}

	switch {
	case IsInvalidInputError(err), errors.Is(err, ErrSignatureMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrInsufficientCredits):
		return http.StatusPaymentRequired
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, ErrTimeout):
		return http.StatusRequestTimeout
	case errors.Is(err, ErrDuplicateDesign), errors.Is(err, ErrDuplicateUser):
		return http.StatusConflict
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// InsufficientCreditsError provides detailed error information for a rejected debit
type InsufficientCreditsError struct {
	Email     string
	Required  int64
	Available int64
}

// Error implements the error interface
func (e *InsufficientCreditsError) Error() string {
	return fmt.Sprintf("insufficient credits for %s: required %d, available %d",
		e.Email, e.Required, e.Available)
}

// Is checks if the target error is an ErrInsufficientCredits
func (e *InsufficientCreditsError) Is(target error) bool {
	return target == ErrInsufficientCredits
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientCreditsError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_credits",
		"email":      e.Email,
		"required":   e.Required,
		"available":  e.Available,
		"error_code": CodeInsufficientCredits,
	}
}

// NewInsufficientCreditsError creates a new detailed insufficient credits error
func NewInsufficientCreditsError(email string, required, available int64) error {
	return &InsufficientCreditsError{
		Email:     email,
		Required:  required,
		Available: available,
	}
}

// maxSnippetLength bounds the raw model output echoed back in format errors
const maxSnippetLength = 300

// GenerationFormatError carries a truncated snippet of model output that failed to parse
type GenerationFormatError struct {
	Reason  string
	Snippet string
}

// Error implements the error interface
func (e *GenerationFormatError) Error() string {
	return fmt.Sprintf("%s: %s", ErrGenerationFormat.Error(), e.Reason)
}

// Is checks if the target error is an ErrGenerationFormat
func (e *GenerationFormatError) Is(target error) bool {
	return target == ErrGenerationFormat
}

// LogFields returns a map of fields for structured logging
func (e *GenerationFormatError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "generation_format",
		"reason":     e.Reason,
		"snippet":    e.Snippet,
		"error_code": CodeGenerationFormat,
	}
}

// NewGenerationFormatError creates a format error, truncating raw to a bounded snippet
func NewGenerationFormatError(reason, raw string) error {
	snippet := raw
	if r := []rune(raw); len(r) > maxSnippetLength {
		snippet = string(r[:maxSnippetLength])
	}
	return &GenerationFormatError{Reason: reason, Snippet: snippet}
}

// UpstreamError describes a failed call to an external provider
type UpstreamError struct {
	Provider   string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Message)
}

// Is checks if the target error is an ErrUpstreamFailure
func (e *UpstreamError) Is(target error) bool {
	return target == ErrUpstreamFailure
}

// LogFields returns a map of fields for structured logging
func (e *UpstreamError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "upstream_failure",
		"provider":    e.Provider,
		"status_code": e.StatusCode,
		"message":     e.Message,
		"error_code":  CodeUpstreamFailure,
	}
}

// NewUpstreamError creates a new upstream provider error
func NewUpstreamError(provider string, statusCode int, message string) error {
	return &UpstreamError{Provider: provider, StatusCode: statusCode, Message: message}
}

// ValidationError names the offending field of an invalid request
type ValidationError struct {
	Field string
	Err   error
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Is reports every validation error as ErrInvalidInput
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a validation error for field
func NewValidationError(field string, err error) error {
	return &ValidationError{Field: field, Err: err}
}

// LogFieldsOf extracts structured fields from err when it provides them
func LogFieldsOf(err error) map[string]any {
	var lf interface{ LogFields() map[string]any }
	if errors.As(err, &lf) {
		return lf.LogFields()
	}
	return map[string]any{"error": err.Error(), "error_code": ErrorCode(err)}
}

// IsInvalidInputError checks if the error stems from a malformed request
func IsInvalidInputError(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidMode) ||
		errors.Is(err, ErrInvalidLanguage)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrDesignNotFound) ||
		errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrPackageNotFound)
}
