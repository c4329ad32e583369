package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyEmail is the gin context key holding the authenticated identity.
const ContextKeyEmail = "auth_email"

// Middleware handles bearer-token authentication for HTTP requests.
type Middleware struct {
	tokens  *TokenIssuer
	service *Service
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(tokens *TokenIssuer, service *Service) *Middleware {
	return &Middleware{
		tokens:  tokens,
		service: service,
	}
}

// RequireAuth verifies the bearer token and binds the resolved identity to
// the request context. Requests without a valid token are rejected with 401
// before any domain logic runs.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "authentication required",
			})
			return
		}

		email, err := m.tokens.Verify(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		c.Set(ContextKeyEmail, email)
		c.Next()
	}
}

// RequireAdmin gates deletion behind the admin flag. Must run after
// RequireAuth. The flag is resolved against the user store on every call,
// not read from the token.
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		email := GetEmail(c)
		if email == "" || !m.service.CanDelete(email) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "admin privileges required for deletion",
			})
			return
		}
		c.Next()
	}
}

// extractBearerToken pulls the token from "Authorization: Bearer <token>".
func extractBearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}

	return parts[1], true
}

// GetEmail retrieves the authenticated user's email from the context.
// Returns "" if the request is unauthenticated.
func GetEmail(c *gin.Context) string {
	if v, exists := c.Get(ContextKeyEmail); exists {
		if email, ok := v.(string); ok {
			return email
		}
	}
	return ""
}
