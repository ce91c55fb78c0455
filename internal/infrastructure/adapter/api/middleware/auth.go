package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/amirhossein-jamali/image2code-backend/internal/domain/entity"
	errs "github.com/amirhossein-jamali/image2code-backend/internal/domain/error"
	"github.com/amirhossein-jamali/image2code-backend/internal/infrastructure/config"
)

// AuthEmailKey is the gin context key of the authenticated email
const AuthEmailKey = "auth_email"

// Claims are the session token claims issued by the auth provider
type Claims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// Auth verifies HS256 bearer tokens and stores the caller's email.
// When disabled every request passes unauthenticated.
func Auth(cfg config.AuthConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}

	parserOpts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if cfg.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(parserOpts...)
	secret := []byte(cfg.JWTSecret)

	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			AbortWithError(c, errs.ErrUnauthorized)
			return
		}

		claims := &Claims{}
		_, err := parser.ParseWithClaims(strings.TrimSpace(token), claims, func(*jwt.Token) (any, error) {
			return secret, nil
		})
		if err != nil {
			reason := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				reason = "token expired"
			}
			AbortWithError(c, errors.Join(errs.ErrUnauthorized, errors.New(reason)))
			return
		}

		email := entity.NormalizeEmail(claims.Email)
		if email == "" {
			email = entity.NormalizeEmail(claims.Subject)
		}
		if entity.ValidateEmail(email) != nil {
			AbortWithError(c, errors.Join(errs.ErrUnauthorized, errors.New("token carries no email")))
			return
		}

		c.Set(AuthEmailKey, email)
		c.Next()
	}
}

// AuthenticatedEmail returns the email of the verified caller, if any
func AuthenticatedEmail(c *gin.Context) (string, bool) {
	email := c.GetString(AuthEmailKey)
	return email, email != ""
}

// CheckOwner rejects a request acting on another user's email when the caller is authenticated
func CheckOwner(c *gin.Context, email string) error {
	caller, ok := AuthenticatedEmail(c)
	if !ok {
		return nil
	}
	if entity.NormalizeEmail(email) != caller {
		return errs.ErrForbidden
	}
	return nil
}
