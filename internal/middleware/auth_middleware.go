package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/gcett/studentdir/internal/app/services"
)

// AdminCookieName is the cookie carrying the signed admin session
const AdminCookieName = "admin-token"

// Context keys set for authenticated admins
const (
	ContextKeyAdminEmail = "adminEmail"
	ContextKeyIsAdmin    = "isAdmin"
)

// AuthMiddleware gates admin routes on the session cookie
type AuthMiddleware struct {
	authService services.AdminAuthService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authService services.AdminAuthService) *AuthMiddleware {
	return &AuthMiddleware{authService: authService}
}

// RequireAdmin aborts with 401 unless the request carries a valid admin cookie
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(AdminCookieName)
		email, err := m.authService.Authenticate(token)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(ContextKeyAdminEmail, email)
		c.Set(ContextKeyIsAdmin, true)
		c.Next()
	}
}

// DetectAdmin marks the request as admin when a valid cookie is present and
// never rejects it
func (m *AuthMiddleware) DetectAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, err := c.Cookie(AdminCookieName); err == nil && token != "" {
			if email, err := m.authService.Authenticate(token); err == nil {
				c.Set(ContextKeyAdminEmail, email)
				c.Set(ContextKeyIsAdmin, true)
			}
		}
		c.Next()
	}
}

// IsAdmin reports whether an earlier middleware authenticated an admin
func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ContextKeyIsAdmin)
}
