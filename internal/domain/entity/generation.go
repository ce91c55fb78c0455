package entity

import (
	"errors"
	"net/url"
	"strings"

	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
)

// Mode selects the model tier and its credit cost
type Mode string

// Generation modes
const (
	ModeBasic        Mode = "basic"
	ModeProfessional Mode = "professional"
	ModeUltra        Mode = "ultra"
)

// Language is the target output of a generation
type Language string

// Supported languages
const (
	LanguageReactTailwind Language = "react-tailwind"
	LanguageHTMLCSS       Language = "html-css"
)

// ParseMode converts user input into a Mode, defaulting to basic when empty
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeBasic:
		return ModeBasic, nil
	case ModeProfessional:
		return ModeProfessional, nil
	case ModeUltra:
		return ModeUltra, nil
	default:
		return "", errs.ErrInvalidMode
	}
}

// ParseLanguage converts user input into a supported Language
func ParseLanguage(s string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(s))) {
	case LanguageReactTailwind:
		return LanguageReactTailwind, nil
	case LanguageHTMLCSS:
		return LanguageHTMLCSS, nil
	default:
		return "", errs.ErrInvalidLanguage
	}
}

// GenerationRequest is a validated request to turn a design into code
type GenerationRequest struct {
	Description string
	ImageURL    string
	Options     []string
	UserEmail   string
	Mode        Mode
	Language    Language
}

// NewGenerationRequest validates raw inputs and builds a GenerationRequest
func NewGenerationRequest(description, imageURL string, options []string, email, mode, language string) (*GenerationRequest, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, errs.NewValidationError("userEmail", err)
	}

	description = strings.TrimSpace(description)
	imageURL = strings.TrimSpace(imageURL)
	if description == "" && imageURL == "" {
		return nil, errs.NewValidationError("description", errors.New("description or imageUrl is required"))
	}
	if imageURL != "" {
		if err := validateImageURL(imageURL); err != nil {
			return nil, err
		}
	}

	lang, err := ParseLanguage(language)
	if err != nil {
		return nil, errs.NewValidationError("language", err)
	}
	m, err := ParseMode(mode)
	if err != nil {
		return nil, errs.NewValidationError("mode", err)
	}

	return &GenerationRequest{
		Description: description,
		ImageURL:    imageURL,
		Options:     options,
		UserEmail:   email,
		Mode:        m,
		Language:    lang,
	}, nil
}

func validateImageURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errs.NewValidationError("imageUrl", errors.New("must be an absolute http(s) URL"))
	}
	return nil
}

// ImproveRequest asks the model to refine existing code
type ImproveRequest struct {
	Code      string
	UserEmail string
}

// NewImproveRequest validates raw inputs and builds an ImproveRequest
func NewImproveRequest(code, email string) (*ImproveRequest, error) {
	email = NormalizeEmail(email)
	if err := ValidateEmail(email); err != nil {
		return nil, errs.NewValidationError("userEmail", err)
	}
	if strings.TrimSpace(code) == "" {
		return nil, errs.NewValidationError("code", errors.New("is required"))
	}
	return &ImproveRequest{Code: code, UserEmail: email}, nil
}

// GenerationResult is returned to the caller after a successful generation
type GenerationResult struct {
	Project          *GeneratedProject
	Model            string
	CreditsCharged   int64
	CreditsRemaining int64
}
