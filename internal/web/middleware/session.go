package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/martijn/inkwell/internal/core/domain"
	"github.com/martijn/inkwell/internal/core/service"
)

const (
	SessionCookieName = "inkwell_session"
	UserContextKey    = "current_user"

	sessionCookieMaxAge = service.SessionLifetimeDays * 24 * 60 * 60
)

// CurrentUser resolves the session cookie into a *domain.User and stores
// it in the request context. Anonymous and stale-cookie requests pass
// through without a user; nothing downstream may assume one exists.
func CurrentUser(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookieName)
		if err != nil || token == "" {
			c.Next()
			return
		}

		user, err := authService.ResolveSession(c.Request.Context(), token)
		if err != nil {
			// Expired, forged, or orphaned cookie: treat as anonymous
			ClearSessionCookie(c)
			c.Next()
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

// RequireUser redirects anonymous requests to the login page.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetCurrentUser(c); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetCurrentUser retrieves the authenticated user from the request context.
func GetCurrentUser(c *gin.Context) (*domain.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*domain.User)
	return user, ok
}

// SetSessionCookie attaches a signed session token to the response.
func SetSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookieName, token, sessionCookieMaxAge, "/", "", false, true)
}

// ClearSessionCookie overwrites the session cookie with an expired one.
func ClearSessionCookie(c *gin.Context) {
	c.SetCookie(SessionCookieName, "", -1, "/", "", false, true)
}
